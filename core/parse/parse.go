package parse

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// TolerantUnmarshal decodes content into v. It first attempts a strict
// json.Unmarshal; on failure it repairs the content with jsonrepair and
// retries once. An error is returned only when both attempts fail, in which
// case the caller should treat content as opaque text.
//
// Note that repair can legalize non-JSON input into a bare JSON string
// (`not json` becomes `"not json"`); such input still fails to decode into
// struct or map targets, so garbage does not masquerade as a response.
func TolerantUnmarshal(content string, v any) error {
	err := json.Unmarshal([]byte(content), v)
	if err == nil {
		return nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return fmt.Errorf("failed to unmarshal content: %w (repair also failed: %v)", err, repairErr)
	}

	if retryErr := json.Unmarshal([]byte(repaired), v); retryErr != nil {
		return fmt.Errorf("failed to unmarshal repaired JSON: %w (original error: %v)", retryErr, err)
	}

	return nil
}
