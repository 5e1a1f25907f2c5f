package routes

import (
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/example/java-service/internal/apiinfo"
	"github.com/example/java-service/internal/http/v1/hello"
	"github.com/example/java-service/internal/http/v1/info"
)

// Register wires all documented HTTP routes into the provided API router.
func Register(api huma.API, desc apiinfo.ServiceDescriptor, startedAt time.Time) {
	hello.Register(api)
	info.Register(api, desc, startedAt)
}
