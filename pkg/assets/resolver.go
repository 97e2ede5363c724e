package assets

// Resolver resolves a source asset name to the URL path a page should
// reference.
type Resolver interface {
	Asset(source string) string
}

type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver creates a Resolver that looks names up in the manifest and
// prepends prefix, typically the static mount path:
//
//	resolver := assets.NewResolver(m, "/static/")
//	resolver.Asset("styles.css") // "/static/styles.a1b2c3d4.css"
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{manifest: m, prefix: prefix}
}

func (r *manifestResolver) Asset(source string) string {
	return r.prefix + r.manifest.Resolve(source)
}

type passthrough struct {
	prefix string
}

// NewPassthroughResolver returns names unchanged apart from the prefix.
// Used in development where fingerprinting is skipped so the browser always
// fetches the freshly rebuilt file.
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(source string) string {
	return p.prefix + source
}
