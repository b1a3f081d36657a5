// Package lib groups modules that do not fit strictly into the
// handler/service/repository layers: background job processing
// (Redis/Asynq) and the email integration (Resend).
package lib
