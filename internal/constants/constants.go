package constants

// APIName is the prefix attached to every log message emitted by the service.
func APIName() string {
	return "[car-api-go]"
}
