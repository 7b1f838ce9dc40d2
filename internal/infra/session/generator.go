package session

import "vinyl/internal/domain/service"

type idGenerator struct{}

// NewIDGenerator exposes GenerateID behind the domain interface.
func NewIDGenerator() service.SessionIDGenerator {
	return idGenerator{}
}

func (idGenerator) Generate() (string, error) {
	return GenerateID()
}
