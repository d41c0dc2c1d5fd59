package sdk

import "encoding/json"

// Intent mirrors the signed transfer intents attached to a contract call.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}

// Env is the execution environment snapshot the host hands to every call.
type Env struct {
	ContractId  string `json:"contract.id"`
	TxId        string `json:"tx.id"`
	Index       int64  `json:"tx.index"`
	OpIndex     int64  `json:"tx.op_index"`
	BlockId     string `json:"block.id"`
	BlockHeight uint64 `json:"block.height"`
	Timestamp   string `json:"block.timestamp"`
	Sender      Sender
	Intents     []Intent
}

// parseEnv maps the raw JSON env blob into the Env struct. The sender and
// intent fields live under msg.* keys, so they are lifted out of a generic map.
func parseEnv(envStr string) Env {
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	if sender, ok := envMap["msg.sender"].(string); ok {
		env.Sender.Address = Address(sender)
	}
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				env.Sender.RequiredAuths = append(env.Sender.RequiredAuths, Address(addr))
			}
		}
	}
	if auths, ok := envMap["msg.required_posting_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				env.Sender.RequiredPostingAuths = append(env.Sender.RequiredPostingAuths, Address(addr))
			}
		}
	}
	if rawIntents, ok := envMap["msg.intents"].([]interface{}); ok {
		for _, raw := range rawIntents {
			b, err := json.Marshal(raw)
			if err != nil {
				continue
			}
			var intent Intent
			if json.Unmarshal(b, &intent) == nil {
				env.Intents = append(env.Intents, intent)
			}
		}
	}
	return env
}
