package testutil

import "context"

// FakeInspector is an in-memory process table.
type FakeInspector struct {
	Parents map[int]int
	Names   map[int]string
}

// NewFakeInspector returns an empty process table; every lookup fails until populated.
func NewFakeInspector() *FakeInspector {
	return &FakeInspector{
		Parents: make(map[int]int),
		Names:   make(map[int]string),
	}
}

// AddProcess registers pid with its parent and command name.
func (f *FakeInspector) AddProcess(pid, ppid int, name string) *FakeInspector {
	f.Parents[pid] = ppid
	f.Names[pid] = name
	return f
}

func (f *FakeInspector) ParentID(_ context.Context, pid int) (int, bool) {
	ppid, ok := f.Parents[pid]
	return ppid, ok
}

func (f *FakeInspector) Name(_ context.Context, pid int) (string, bool) {
	name, ok := f.Names[pid]
	return name, ok
}
