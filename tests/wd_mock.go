package tests

import (
	"time"

	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"
	"github.com/stretchr/testify/mock"
)

func prepareLoggerArgs(message string, params []slf.Param) []interface{} {
	args := make([]interface{}, 0, len(params)+1)
	args = append(args, message)
	for _, param := range params {
		args = append(args, param.(interface{}))
	}

	return args
}

// WdMock records every logger and stats call for assertions in tests.
type WdMock struct {
	mock.Mock
}

func (m *WdMock) Trace(message string, params ...slf.Param) {
	m.Called(prepareLoggerArgs(message, params)...)
}

func (m *WdMock) Debug(message string, params ...slf.Param) {
	m.Called(prepareLoggerArgs(message, params)...)
}

func (m *WdMock) Info(message string, params ...slf.Param) {
	m.Called(prepareLoggerArgs(message, params)...)
}

func (m *WdMock) Warning(message string, params ...slf.Param) {
	m.Called(prepareLoggerArgs(message, params)...)
}

func (m *WdMock) Error(message string, params ...slf.Param) {
	m.Called(prepareLoggerArgs(message, params)...)
}

func (m *WdMock) Alert(message string, params ...slf.Param) {
	m.Called(prepareLoggerArgs(message, params)...)
}

func (m *WdMock) Emergency(message string, params ...slf.Param) {
	m.Called(prepareLoggerArgs(message, params)...)
}

func (m *WdMock) IncCounter(name string, value int64, p ...slf.Param) {
	m.Called(name, value)
}

func (m *WdMock) UpdateGauge(name string, value int64, p ...slf.Param) {
	m.Called(name, value)
}

func (m *WdMock) RecordTimer(name string, d time.Duration, p ...slf.Param) {
	m.Called(name, d)
}

func (m *WdMock) Timer(name string, p ...slf.Param) slf.Timer {
	return slf.NewTimer(name, p, m)
}

func (m *WdMock) WithParams(p ...slf.Param) wd.Watchdog {
	panic("this method shouldn't be used")
}
