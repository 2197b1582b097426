package config

// ResolveDSN picks the connection string for a run.
//
// Precedence: explicit argument, TIMESCALE_SERVICE_URL, DATABASE_URL,
// fallback (usually built from the YAML database block), then DefaultDSN.
// A variable that is set wins even when its value is empty; only an empty
// explicit argument or fallback counts as absent.
func ResolveDSN(explicit string, s *Settings, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if s != nil {
		if v, ok := s.TimescaleURL(); ok {
			return v
		}
		if v, ok := s.DatabaseURLValue(); ok {
			return v
		}
	}
	if fallback != "" {
		return fallback
	}
	return DefaultDSN
}
