package utils

import (
	"healthinfo-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterRequest(t *testing.T) {
	request := &requests.Register{
		Username: "  jdoe ",
		Email:    " JDoe@Example.COM ",
		Fullname: " Jane Doe ",
	}

	SanitizeRegisterRequest(request)

	assert.Equal(t, "jdoe", request.Username)
	assert.Equal(t, "jdoe@example.com", request.Email)
	assert.Equal(t, "Jane Doe", request.Fullname)
}

func TestSanitizeCreateClientRequest(t *testing.T) {
	request := &requests.CreateClient{
		FirstName: " Jane ",
		LastName:  " Doe ",
		Email:     " Jane.Doe@Example.COM ",
		Phone:     " 555-0100 ",
	}

	SanitizeCreateClientRequest(request)

	assert.Equal(t, "Jane", request.FirstName)
	assert.Equal(t, "Doe", request.LastName)
	assert.Equal(t, "jane.doe@example.com", request.Email)
	assert.Equal(t, "555-0100", request.Phone)
}

func TestSanitizeEnrollClientRequest(t *testing.T) {
	request := &requests.EnrollClient{
		ClientID:  " client-1 ",
		ProgramID: " program-1 ",
		Notes:     " first intake ",
	}

	SanitizeEnrollClientRequest(request)

	assert.Equal(t, "client-1", request.ClientID)
	assert.Equal(t, "program-1", request.ProgramID)
	assert.Equal(t, "first intake", request.Notes)
}
