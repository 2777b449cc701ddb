//go:build stringer

//go:generate go run golang.org/x/tools/cmd/stringer -linecomment -type Ordering -output zz_generated.ordering.stringer.go -trimprefix Ordering
//go:generate go run golang.org/x/tools/cmd/stringer -linecomment -type ResultKind -output zz_generated.resultkind.stringer.go -trimprefix ResultKind
package ranged_search

import _ "golang.org/x/tools/cmd/stringer"
