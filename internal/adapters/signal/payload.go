package signal

import "github.com/tidwall/gjson"

// Inbound payloads are untrusted and loosely typed. Fields are read with
// gjson and coerced instead of failing the whole frame on a type mismatch.

// str accepts strings and numbers; anything else reads as empty.
func str(payload []byte, path string) string {
	r := gjson.GetBytes(payload, path)
	switch r.Type {
	case gjson.String, gjson.Number:
		return r.String()
	default:
		return ""
	}
}

// num coerces to float64. Missing or non-numeric values read as 0.
func num(payload []byte, path string) float64 {
	return gjson.GetBytes(payload, path).Float()
}

func flag(payload []byte, path string) bool {
	return gjson.GetBytes(payload, path).Bool()
}
