package peer

import "testing"

func TestNewRegistryEmpty(t *testing.T) {
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if r.Len() != 0 {
		t.Fail()
	}
	if len(r.IDs()) != 0 {
		t.Fail()
	}
	if _, ok := r.Client(1); ok {
		t.Fail()
	}
	if _, ok := r.Address(1); ok {
		t.Fail()
	}
}

func TestNewRegistryDialsEveryPeer(t *testing.T) {
	r, err := NewRegistry(map[int32]string{
		1: "localhost:50053",
		2: "localhost:50054",
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if r.Len() != 2 {
		t.Fail()
	}
	addr, ok := r.Address(1)
	if !ok || addr != "localhost:50053" {
		t.Fail()
	}
	if _, ok := r.Client(2); !ok {
		t.Fail()
	}
}
