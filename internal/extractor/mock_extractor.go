package extractor

import "github.com/stretchr/testify/mock"

// MockExtractor is a mock implementation of Extractor using testify/mock.
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) ExtractFile(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}
