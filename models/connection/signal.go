package connection

const (
	CodeSessionID uint8 = iota
	CodeStartGame

	// client sends row and col, 1-indexed
	CodeAttack
	CodeInvalidCoordinate

	// boards after every completed round
	CodeRenderBoards
	CodeShipSunk
	CodeEndGame
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)
