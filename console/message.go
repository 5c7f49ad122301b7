package console

const (
	CodeStartGame uint8 = iota
	CodeShot
	CodeEndGame

	// if the request line is not a shot or a quit
	CodeInvalidRequest
)

type NoPayload bool

type Message[T any] struct {
	Code    uint8    `json:"code"`
	Payload T        `json:"payload,omitempty"`
	Error   *RespErr `json:"error,omitempty"`
}

func NewMessage[T any](code uint8) Message[T] {
	return Message[T]{Code: code}
}

func (m *Message[T]) AddPayload(payload T) {
	m.Payload = payload
}

func (m *Message[T]) AddError(errorDetails, message string) {
	m.Error = NewRespErr(errorDetails, message)
}

type RespStartGame struct {
	GameUuid   string `json:"game_uuid"`
	GridSize   int    `json:"grid_size"`
	Ships      string `json:"ships"`
	TargetGrid string `json:"target_grid"`
}

type RespShot struct {
	Row           int    `json:"row"`
	Col           int    `json:"col"`
	PositionState int    `json:"position_state"`
	SunkShip      string `json:"sunk_ship,omitempty"`
	SunkMessage   string `json:"sunk_message,omitempty"`
	IsWin         bool   `json:"is_win"`
	TargetGrid    string `json:"target_grid"`
}

type RespEndGame struct {
	GameUuid    string `json:"game_uuid"`
	Won         bool   `json:"won"`
	ShotsFired  int    `json:"shots_fired"`
	SunkenShips int    `json:"sunken_ships"`
	Ships       int    `json:"ships"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
