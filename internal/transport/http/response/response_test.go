package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK_NilDataBecomesObject(t *testing.T) {
	b, err := json.Marshal(OK(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":0,"msg":"OK","data":{}}`, string(b))
}

func TestError(t *testing.T) {
	b, err := json.Marshal(Error(CodeNotFound, "not_found", ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":404,"msg":"Not Found","kind":"not_found","data":{}}`, string(b))

	r := Error(CodeForbidden, "forbidden", "invalid token")
	assert.Equal(t, "invalid token", r.Msg)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, 200, Status(CodeOK))
	assert.Equal(t, 401, Status(CodeUnauthorized))
}
