package core

import "encoding/json"

// nextConfigTemplate replaces next.config.js wholesale. Settings beyond the
// ones below that a project had are lost.
const nextConfigTemplate = `/** @type {import('next').NextConfig} */
const nextConfig = {
  output: "export",
  trailingSlash: true,
  skipTrailingSlashRedirect: true,
  distDir: "out",
  eslint: {
    ignoreDuringBuilds: true,
  },
  typescript: {
    ignoreBuildErrors: true,
  },
  images: {
    unoptimized: true,
  },
  assetPrefix: "",
  basePath: "",
}

module.exports = nextConfig`

const indexFallbackTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Redirecting...</title>
    <script>
        window.location.href = './';
    </script>
</head>
<body>
    <p>Redirecting to portfolio...</p>
</body>
</html>`

const notFoundTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Portfolio - Loading</title>
    <script>
        window.location.href = '/';
    </script>
</head>
<body>
    <p>Loading portfolio...</p>
</body>
</html>`

const netlifyTemplate = `[build]
  publish = "out"
  command = "npm run build"

[build.environment]
  NODE_VERSION = "18"

[[redirects]]
  from = "/*"
  to = "/index.html"
  status = 200

[[headers]]
  for = "/*"
  [headers.values]
    X-Frame-Options = "DENY"
    X-XSS-Protection = "1; mode=block"
    X-Content-Type-Options = "nosniff"
    Referrer-Policy = "strict-origin-when-cross-origin"`

// VercelConfig is the vercel.json document deployfix writes.
type VercelConfig struct {
	BuildCommand    string          `json:"buildCommand"`
	OutputDirectory string          `json:"outputDirectory"`
	Framework       string          `json:"framework"`
	Rewrites        []VercelRewrite `json:"rewrites"`
}

// VercelRewrite is one vercel.json rewrite rule.
type VercelRewrite struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

var canonicalVercelConfig = VercelConfig{
	BuildCommand:    "npm run build",
	OutputDirectory: "out",
	Framework:       "nextjs",
	Rewrites: []VercelRewrite{
		{Source: "/(.*)", Destination: "/index.html"},
	},
}

func vercelTemplate() ([]byte, error) {
	return json.MarshalIndent(canonicalVercelConfig, "", "  ")
}
