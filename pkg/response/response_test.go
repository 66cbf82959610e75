package response

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOKT(t *testing.T) {
	r := OKT(map[string]int{"a": 1})
	require.Equal(t, APIResponseCodeOK, r.Code)
	require.Equal(t, "ok", r.Message)
	require.Equal(t, 1, r.Data["a"])
}

func TestErrorMsg(t *testing.T) {
	require.Equal(t, "not found", ErrorMsg(APIResponseCodeNotFound, "").Message)
	require.Equal(t, "folder name is empty", ErrorMsg(APIResponseCodeBadRequest, "folder name is empty").Message)
	require.Equal(t, "daily free use already spent", ErrorT[any](APIResponseCodeQuotaExceeded, nil).Message)
}
