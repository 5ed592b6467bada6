package inline

import (
	"encoding/json"

	"github.com/fexp-cli/fexp/explorer"
)

type Permissions struct {
	Name string `json:"name"`
	Mode string `json:"mode"`
}

// Output is the structured result of an inline invocation.
type Output struct {
	Action      Action            `json:"action"`
	Dir         string            `json:"dir"`
	Target      string            `json:"target,omitempty"`
	Entries     []*explorer.Entry `json:"entries,omitempty"`
	Matches     []string          `json:"matches,omitempty"`
	Permissions *Permissions      `json:"permissions,omitempty"`
	Info        *explorer.Info    `json:"info,omitempty"`
}

func asJson(output *Output) ([]byte, error) {
	return json.Marshal(output)
}
