package printer

import (
	"context"
	"testing"
	"time"

	"distprint/internal/wire"
)

func TestSendToPrinterConfirmsAndAdvancesClock(t *testing.T) {
	svc := New(Config{DelayMin: time.Millisecond, DelayMax: 2 * time.Millisecond})

	resp, err := svc.SendToPrinter(context.Background(), wire.NewPrintRequest(1, "documento", 5, 1))
	if err != nil {
		t.Fatalf("SendToPrinter: %v", err)
	}
	if !resp.GetSuccess() {
		t.Fail()
	}
	if resp.GetLamportTimestamp() <= 5 {
		t.Fail()
	}
}

func TestSendToPrinterMergesClockWithRequestTimestamp(t *testing.T) {
	svc := New(Config{DelayMin: time.Millisecond, DelayMax: time.Millisecond})

	first, err := svc.SendToPrinter(context.Background(), wire.NewPrintRequest(1, "a", 100, 1))
	if err != nil {
		t.Fatalf("SendToPrinter: %v", err)
	}
	if first.GetLamportTimestamp() <= 100 {
		t.Fail()
	}

	second, err := svc.SendToPrinter(context.Background(), wire.NewPrintRequest(2, "b", 1, 1))
	if err != nil {
		t.Fatalf("SendToPrinter: %v", err)
	}
	if second.GetLamportTimestamp() <= first.GetLamportTimestamp() {
		t.Fail()
	}
}

func TestSendToPrinterRespectsContextCancellation(t *testing.T) {
	svc := New(Config{DelayMin: time.Second, DelayMax: time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.SendToPrinter(ctx, wire.NewPrintRequest(1, "documento", 1, 1))
	if err == nil {
		t.Fail()
	}
}
