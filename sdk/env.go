package sdk

// Intent is a permission the transaction signer granted for this call,
// e.g. a transfer.allow with a spend limit and token.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type Caller struct {
	Address Address `json:"id"`
}

// Env is the execution environment snapshot the host exposes per call.
type Env struct {
	ContractId  string   `json:"contract.id"`
	TxId        string   `json:"tx.id"`
	Index       int64    `json:"tx.index"`
	OpIndex     int64    `json:"tx.op_index"`
	BlockId     string   `json:"block.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"block.timestamp"`
	Payer       Address  `json:"msg.payer"`
	Intents     []Intent `json:"intents"`
	Sender      Sender   `json:"-"`
	Caller      Caller   `json:"-"`
}

type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}

// AbortError is the value carried by the panic that Abort raises. The wasm
// host never observes it (abort traps first); the non-wasm mock lets tests
// recover it and inspect the message.
type AbortError string

func (e AbortError) Error() string { return string(e) }
