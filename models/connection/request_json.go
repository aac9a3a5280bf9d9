package connection

type ReqAttack struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
