// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package errors

import (
	"fmt"
	"sort"
	"strings"
)

// InvalidArgument is returned when user-supplied attributes fail
// validation. BadFields maps an attribute path to the reason it was
// rejected.
type InvalidArgument struct {
	Msg       string
	BadFields map[string]string
}

func (e *InvalidArgument) Error() string {
	if len(e.BadFields) == 0 {
		return e.Msg
	}

	fields := make([]string, 0, len(e.BadFields))
	for f := range e.BadFields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString(e.Msg)
	b.WriteString(":")
	for _, f := range fields {
		fmt.Fprintf(&b, " [%s: %s]", f, e.BadFields[f])
	}
	return b.String()
}

// InvalidArgumentError creates an InvalidArgument error with field-specific
// details.
func InvalidArgumentError(msg string, badFields map[string]string) error {
	return &InvalidArgument{
		Msg:       msg,
		BadFields: badFields,
	}
}
