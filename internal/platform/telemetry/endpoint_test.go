package telemetry

import "testing"

func TestParseEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		want     otlpEndpoint
	}{
		{
			name:     "http collector",
			endpoint: "http://otel-collector:4318",
			want:     otlpEndpoint{host: "otel-collector:4318", insecure: true},
		},
		{
			name:     "https collector",
			endpoint: "https://otel.example.com:4318",
			want:     otlpEndpoint{host: "otel.example.com:4318"},
		},
		{
			name:     "path prefix",
			endpoint: "https://gateway.example.com/otlp/",
			want:     otlpEndpoint{host: "gateway.example.com", path: "/otlp"},
		},
		{
			name:     "bare host and port",
			endpoint: "localhost:4318",
			want:     otlpEndpoint{host: "localhost:4318", insecure: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseEndpoint(tt.endpoint)
			if err != nil {
				t.Fatalf("parseEndpoint(%q) error = %v", tt.endpoint, err)
			}
			if got != tt.want {
				t.Errorf("parseEndpoint(%q) = %+v, want %+v", tt.endpoint, got, tt.want)
			}
		})
	}
}

func TestParseEndpoint_Empty(t *testing.T) {
	t.Parallel()

	if _, err := parseEndpoint(""); err == nil {
		t.Fatal("parseEndpoint(\"\") returned nil error")
	}
}
