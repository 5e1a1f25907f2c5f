// Package apiinfo holds the static metadata that describes this service in
// its OpenAPI document.
package apiinfo

import (
	"runtime/debug"

	"github.com/danielgtaylor/huma/v2"
)

const (
	DefaultTitle       = "Java Service API"
	DefaultDescription = "API Documentation for the Java Service"

	// FallbackVersion is used when neither ldflags nor build info carry a version.
	FallbackVersion = "dev"

	// HelloTag groups the greeting operations in the documentation.
	HelloTag            = "Hello API"
	helloTagDescription = "Demo endpoints"
)

// Contact identifies who maintains the API.
type Contact struct {
	Name  string
	Email string
}

// ServiceDescriptor is built once at startup and never modified afterwards.
type ServiceDescriptor struct {
	Title       string
	Version     string
	Description string
	Contact     *Contact
}

// Option customises a descriptor under construction.
type Option func(*ServiceDescriptor)

// WithTitle replaces the default title. An empty title is ignored.
func WithTitle(title string) Option {
	return func(d *ServiceDescriptor) {
		if title != "" {
			d.Title = title
		}
	}
}

// WithDescription replaces the default description. An empty description is ignored.
func WithDescription(description string) Option {
	return func(d *ServiceDescriptor) {
		if description != "" {
			d.Description = description
		}
	}
}

// WithContact sets the maintainer contact. It is dropped when both values are empty.
func WithContact(name, email string) Option {
	return func(d *ServiceDescriptor) {
		if name == "" && email == "" {
			d.Contact = nil
			return
		}
		d.Contact = &Contact{Name: name, Email: email}
	}
}

// New returns the descriptor for version with defaults applied before opts.
// An empty version becomes FallbackVersion.
func New(version string, opts ...Option) ServiceDescriptor {
	if version == "" {
		version = FallbackVersion
	}
	d := ServiceDescriptor{
		Title:       DefaultTitle,
		Version:     version,
		Description: DefaultDescription,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	return d
}

// ResolveVersion picks the build version: the ldflags override when set, then
// the main module version recorded by the go toolchain, then FallbackVersion.
func ResolveVersion(override string) string {
	if override != "" {
		return override
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return FallbackVersion
}

// HumaConfig converts the descriptor into the huma configuration that drives
// the OpenAPI document (served at /openapi.json and /openapi.yaml) and the
// documentation page at docsPath.
func (d ServiceDescriptor) HumaConfig(docsPath string) huma.Config {
	cfg := huma.DefaultConfig(d.Title, d.Version)
	cfg.Info.Description = d.Description
	if d.Contact != nil {
		cfg.Info.Contact = &huma.Contact{Name: d.Contact.Name, Email: d.Contact.Email}
	}
	cfg.Tags = []*huma.Tag{{Name: HelloTag, Description: helloTagDescription}}
	cfg.DocsPath = docsPath
	return cfg
}
