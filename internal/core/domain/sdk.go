package domain

// SdkResult is the resolved location of an SDK.
type SdkResult struct {
	// Path is the absolute directory the SDK was resolved to.
	Path string
	// Version is the version the resolver settled on. It may differ from the
	// requested version when the request left the version open.
	Version string
}
