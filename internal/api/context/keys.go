package context

type Key string

const (
	Account Key = "account"
	Params  Key = "params"
)
