package domain

import "go.trai.ch/zerr"

var (
	// ErrToolUnavailable is returned when the swift binary cannot be located.
	ErrToolUnavailable = zerr.New("swift tool not found in PATH")

	// ErrDescribeFailed is returned when the describe invocation fails for a directory.
	ErrDescribeFailed = zerr.New("failed to describe package")

	// ErrDescribeOutputInvalid is returned when describe output cannot be decoded.
	ErrDescribeOutputInvalid = zerr.New("invalid describe output")

	// ErrManifestMissing is returned when a directory has no manifest file.
	ErrManifestMissing = zerr.New("manifest file not found")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheMarshalFailed is returned when the cache map cannot be marshaled.
	ErrCacheMarshalFailed = zerr.New("failed to marshal package cache")

	// ErrCacheWriteFailed is returned when the cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write package cache")

	// ErrCacheClearFailed is returned when the cache file cannot be removed.
	ErrCacheClearFailed = zerr.New("failed to clear package cache")

	// ErrWalkFailed is returned when the workspace tree cannot be traversed.
	ErrWalkFailed = zerr.New("failed to walk workspace")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrPromptFailed is returned when reading the selection input fails.
	ErrPromptFailed = zerr.New("failed to read selection input")

	// ErrHomeDirUnknown is returned when the user home directory cannot be resolved.
	ErrHomeDirUnknown = zerr.New("failed to resolve user home directory")

	// ErrDiscoveryFailed is returned when a discovery run fails as a whole.
	ErrDiscoveryFailed = zerr.New("package discovery failed")
)
