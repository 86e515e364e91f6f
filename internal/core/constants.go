package core

import "time"

// File and directory names, relative to the project root.
const (
	// NextConfigFile is the Next.js build configuration
	NextConfigFile = "next.config.js"
	// ManifestFile is the npm package manifest
	ManifestFile = "package.json"
	// PublicDir holds static assets copied verbatim into the export
	PublicDir = "public"
	// AppDir is the Next.js app router source directory
	AppDir = "app"
	// NetlifyConfigFile is the Netlify platform configuration
	NetlifyConfigFile = "netlify.toml"
	// VercelConfigFile is the Vercel platform configuration
	VercelConfigFile = "vercel.json"
	// ProfileFile is the optional deployfix configuration
	ProfileFile = ".deployfix.yml"
)

// Full paths relative to project root.
// Use these instead of manually joining directory and file names.
const (
	// IndexFallbackPath is the fallback routing page
	IndexFallbackPath = PublicDir + "/index.html"
	// NotFoundFallbackPath is the static error page
	NotFoundFallbackPath = PublicDir + "/404.html"
	// WorkflowsPath is the GitHub Actions workflow directory
	WorkflowsPath = ".github/workflows"
)

// PageSourceExt is the only extension scanned for static-export incompatibilities.
const PageSourceExt = ".tsx"

// Framework dependency names, checked in priority order.
const (
	DepNext  = "next"
	DepReact = "react"
	DepVue   = "vue"
)

// Required package.json scripts.
var RequiredScripts = []string{"build", "start"}

// Verification defaults.
const (
	// DefaultVerifyCommand is the build command used to verify a fixed project
	DefaultVerifyCommand = "npm run build"
	// DefaultVerifyTimeout bounds the verification build
	DefaultVerifyTimeout = 300 * time.Second
	// MaxWorkers caps the remediation worker pool
	MaxWorkers = 8
)

// Issue messages. These strings are part of the report contract.
const (
	IssueMissingNextConfig    = "Missing " + NextConfigFile
	IssueUnreadableNextConfig = "Unreadable " + NextConfigFile
	IssueMissingStaticExport  = "Missing static export configuration"
	IssueMissingTrailingSlash = "Missing trailingSlash configuration"
	IssueMissingUnoptimized   = "Missing image optimization disable"
	IssueMissingIndexFallback = "Missing " + IndexFallbackPath + " for fallback routing"
	IssueMissingNotFoundPage  = "Missing " + NotFoundFallbackPath + " for error handling"
	IssueMissingManifest      = "Missing " + ManifestFile
	IssueMalformedManifest    = "Malformed " + ManifestFile
	IssueMissingScriptFmt     = "Missing %s script"
	IssueClientRoutingFmt     = "Client-side routing detected in %s"
	IssueServerSidePropsFmt   = "Server-side props detected in %s"
)

// Fix descriptions, one per FixCategory.
const (
	FixDescBuildConfig = "Fixed " + NextConfigFile + " for static export"
	FixDescRouting     = "Created routing fallback files"
	FixDescNetlify     = "Created " + NetlifyConfigFile + " configuration"
	FixDescVercel      = "Created " + VercelConfigFile + " configuration"
	FixDescManifest    = "Fixed " + ManifestFile + " scripts"
)
