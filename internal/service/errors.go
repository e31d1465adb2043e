package service

import "errors"

var (
	ErrCompileFailed = errors.New("failed to compile mjml")
	ErrRenderTimeout = errors.New("render timed out")
	ErrRenderBusy    = errors.New("no render slot available")
)
