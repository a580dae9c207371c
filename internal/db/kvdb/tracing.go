// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package kvdb

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("github.com/mxrtinss/equipe403/internal/db/kvdb")
