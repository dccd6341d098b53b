package serverutils

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email   string `validate:"required,email"`
	Message string `validate:"required,min=3"`
}

func TestValidateRequestPasses(t *testing.T) {
	req := sampleRequest{Email: "advocate@example.com", Message: "What is Section 420 IPC?"}
	assert.NoError(t, ValidateRequest(req))
}

func TestValidateRequestReportsEveryFailedField(t *testing.T) {
	req := sampleRequest{Email: "not-an-email", Message: ""}

	err := ValidateRequest(req)
	require.Error(t, err)

	var fiberErr *fiber.Error
	require.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Contains(t, fiberErr.Message, "Email failed on email")
	assert.Contains(t, fiberErr.Message, "Message failed on required")
}

func TestResponseEnvelopes(t *testing.T) {
	ok := SuccessResponse("done", fiber.Map{"id": 1})
	assert.Equal(t, true, ok["success"])
	assert.Equal(t, 200, ok["code"])
	assert.Equal(t, "done", ok["message"])

	bad := ErrorResponse(404, "not found")
	assert.Equal(t, false, bad["success"])
	assert.Equal(t, 404, bad["code"])
	assert.Equal(t, "not found", bad["message"])
}
