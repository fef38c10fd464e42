package rest

import (
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) ReadText(path, encoding string) (string, error) {
	args := m.Called(path, encoding)
	return args.String(0), args.Error(1)
}

func (m *MockFileService) WriteText(path, content, encoding string) error {
	args := m.Called(path, content, encoding)
	return args.Error(0)
}

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) SaveRaw(collection, filename string, doc json.RawMessage) (string, error) {
	args := m.Called(collection, filename, doc)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentStore) LoadRaw(collection, filename string) (json.RawMessage, error) {
	args := m.Called(collection, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockDocumentStore) Root() string {
	return m.Called().String(0)
}

type MockOpener struct {
	mock.Mock
}

func (m *MockOpener) Open(target string) error {
	return m.Called(target).Error(0)
}
