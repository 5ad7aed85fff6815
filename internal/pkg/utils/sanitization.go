package utils

import (
	"healthinfo-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterRequest(request *requests.Register) {
	request.Username = strings.TrimSpace(request.Username)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Fullname = strings.TrimSpace(request.Fullname)
	request.Role = strings.TrimSpace(request.Role)
}

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeCreateClientRequest(request *requests.CreateClient) {
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
	request.Address = strings.TrimSpace(request.Address)
}

func SanitizeUpdateClientRequest(request *requests.UpdateClient) {
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
	request.Address = strings.TrimSpace(request.Address)
}

func SanitizeCreateProgramRequest(request *requests.CreateProgram) {
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
	request.Category = strings.TrimSpace(request.Category)
}

func SanitizeUpdateProgramRequest(request *requests.UpdateProgram) {
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
	request.Category = strings.TrimSpace(request.Category)
}

func SanitizeEnrollClientRequest(request *requests.EnrollClient) {
	request.ClientID = strings.TrimSpace(request.ClientID)
	request.ProgramID = strings.TrimSpace(request.ProgramID)
	request.Notes = strings.TrimSpace(request.Notes)
}
