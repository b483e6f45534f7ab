package cmseditor

import "github.com/goliatone/go-cms-editor/internal/runtimeconfig"

var (
	ErrDefaultLanguageRequired     = runtimeconfig.ErrDefaultLanguageRequired
	ErrStorageProviderUnknown      = runtimeconfig.ErrStorageProviderUnknown
	ErrStorageDriverUnknown        = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired          = runtimeconfig.ErrStorageDSNRequired
	ErrThumbnailFrameInvalid       = runtimeconfig.ErrThumbnailFrameInvalid
	ErrThumbnailDefaultSizeInvalid = runtimeconfig.ErrThumbnailDefaultSizeInvalid
	ErrThumbnailRouteRequired      = runtimeconfig.ErrThumbnailRouteRequired
	ErrSessionKeysRequired         = runtimeconfig.ErrSessionKeysRequired
	ErrThumbnailSecretRequired     = runtimeconfig.ErrThumbnailSecretRequired
	ErrLoggingProviderRequired     = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown      = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid         = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid        = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	StorageConfig   = runtimeconfig.StorageConfig
	CacheConfig     = runtimeconfig.CacheConfig
	ThumbnailConfig = runtimeconfig.ThumbnailConfig
	EditorConfig    = runtimeconfig.EditorConfig
	SessionConfig   = runtimeconfig.SessionConfig
	Features        = runtimeconfig.Features
	LoggingConfig   = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
