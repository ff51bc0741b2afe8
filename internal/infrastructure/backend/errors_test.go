package backend

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func TestExtractMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message", `{"message":"Company not found"}`, "Company not found"},
		{"error", `{"error":"Invalid token"}`, "Invalid token"},
		{"message wins over error", `{"message":"a","error":"b"}`, "a"},
		{"details strings", `{"details":["email is required","phone is invalid"]}`, "email is required; phone is invalid"},
		{"details objects", `{"message":"Validation failed","details":[{"field":"email","message":"bad email"},{"msg":"bad phone"}]}`, "bad email; bad phone"},
		{"errors map", `{"errors":{"name":["is required","is too short"],"email":"taken"}}`, "email: taken; name: is required, is too short"},
		{"errors list", `{"errors":["first","second"]}`, "first; second"},
		{"empty details fall back", `{"details":[],"message":"nope"}`, "nope"},
		{"not json", `<html>502</html>`, ""},
		{"empty", ``, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractMessage([]byte(tc.body)))
		})
	}
}
