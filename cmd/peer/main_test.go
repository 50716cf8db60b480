package main

import "testing"

func TestParsePeerListEmpty(t *testing.T) {
	peers, err := parsePeerList("")
	if err != nil {
		t.Fatalf("parsePeerList: %v", err)
	}
	if len(peers) != 0 {
		t.Fail()
	}
}

func TestParsePeerListParsesEntries(t *testing.T) {
	peers, err := parsePeerList("1@localhost:50053,2@localhost:50054")
	if err != nil {
		t.Fatalf("parsePeerList: %v", err)
	}
	if peers[1] != "localhost:50053" || peers[2] != "localhost:50054" {
		t.Fail()
	}
}

func TestParsePeerListRejectsMissingID(t *testing.T) {
	if _, err := parsePeerList("localhost:50053"); err == nil {
		t.Fail()
	}
}

func TestParsePeerListRejectsNonNumericID(t *testing.T) {
	if _, err := parsePeerList("abc@localhost:50053"); err == nil {
		t.Fail()
	}
}
