package service

// PushRecorder records push delivery outcomes per notification event.
type PushRecorder interface {
	AddPush(event string, success, failure int)
}
