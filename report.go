package typeson

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/argonlab/typeson/internal/mapper"
	"github.com/argonlab/typeson/result"
)

// suppressedUUIDMessage is filtered out of the aggregated diagnostics by exact
// match. The uuid coercion reports it with a failure code even though the
// field is simply left at its default and the load outcome stays successful;
// without the filter every such load would fail on noise. Narrow match only,
// not a general suppression rule.
const suppressedUUIDMessage = mapper.UUIDParseFailure

// prepareDeserializerSettings builds the mapper settings for one load call:
// it installs the aggregating callback that collects diagnostics into the
// returned builder, chaining to any caller-supplied callback afterwards.
func prepareDeserializerSettings(in *DeserializerSettings) (mapper.Settings, *strings.Builder, error) {
	var s DeserializerSettings
	if in != nil {
		s = *in
	}
	if s.Registry == nil {
		return mapper.Settings{}, nil, fmt.Errorf("%w for loading", ErrRegistryRequired)
	}

	diagnostics := &strings.Builder{}
	chained := s.Reporting
	reporting := func(message string, rc result.ResultCode, path string) result.ResultCode {
		if !result.LoadSucceeded(rc.Outcome()) && message != suppressedUUIDMessage {
			diagnostics.WriteString(message)
			fmt.Fprintf(diagnostics, " '%s' \n", path)
		}
		if chained != nil {
			rc = chained(message, rc, path)
		}
		return rc
	}

	return mapper.Settings{Registry: s.Registry, Reporting: reporting}, diagnostics, nil
}

// loadOutcome folds the final mapping code and the accumulated diagnostics
// into the call's overall result. A technically successful outcome with
// non-empty diagnostics still fails, carrying the diagnostics as the error.
func loadOutcome(rc result.ResultCode, diagnostics *strings.Builder) error {
	if result.LoadSucceeded(rc.Outcome()) && diagnostics.Len() == 0 {
		return nil
	}
	if diagnostics.Len() > 0 {
		return fmt.Errorf("%s", diagnostics.String())
	}
	return fmt.Errorf("%s", rc.Render(""))
}

// ReportCommonWarnings returns a reporting callback for interactive tools. It
// logs skipped fields as warnings unless the field path marks a comment (a
// segment prefixed with '#'), and logs any halted or unsupported-or-worse
// event. Use it in DeserializerSettings.Reporting as an alternative to silent
// aggregation; it does not replace the built-in diagnostics.
func ReportCommonWarnings(logger *slog.Logger) result.IssueCallback {
	if logger == nil {
		logger = slog.Default()
	}
	return func(message string, rc result.ResultCode, path string) result.ResultCode {
		if rc.Outcome() == result.Skipped {
			if !strings.Contains(path, "/#") {
				logger.Warn("skipped unrecognized field", slog.String("path", path))
			}
		} else if rc.Processing() != result.Completed || rc.Outcome() >= result.Unsupported {
			logger.Warn("serialization issue",
				slog.String("path", path),
				slog.String("detail", rc.Render("")),
				slog.String("message", message))
		}
		return rc
	}
}
