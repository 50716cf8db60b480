package wire

// Builder functions collect the wire-message construction in one place so
// callers don't repeat field-by-field literals, mirroring the role of
// MessageBuilder in the original printing-system client.

func NewPrintRequest(clientID int32, messageContent string, lamportTimestamp int64, requestNumber int32) *PrintRequest {
	return &PrintRequest{
		ClientId:         clientID,
		MessageContent:   messageContent,
		LamportTimestamp: lamportTimestamp,
		RequestNumber:    requestNumber,
	}
}

func NewPrintResponse(success bool, confirmationMessage string, lamportTimestamp int64) *PrintResponse {
	return &PrintResponse{
		Success:              success,
		ConfirmationMessage:  confirmationMessage,
		LamportTimestamp:     lamportTimestamp,
	}
}

func NewAccessRequest(clientID int32, lamportTimestamp int64, requestNumber int32) *AccessRequest {
	return &AccessRequest{
		ClientId:         clientID,
		LamportTimestamp: lamportTimestamp,
		RequestNumber:    requestNumber,
	}
}

func NewAccessResponse(accessGranted bool, lamportTimestamp int64) *AccessResponse {
	return &AccessResponse{
		AccessGranted:    accessGranted,
		LamportTimestamp: lamportTimestamp,
	}
}

func NewAccessRelease(clientID int32, lamportTimestamp int64, requestNumber int32) *AccessRelease {
	return &AccessRelease{
		ClientId:         clientID,
		LamportTimestamp: lamportTimestamp,
		RequestNumber:    requestNumber,
	}
}
