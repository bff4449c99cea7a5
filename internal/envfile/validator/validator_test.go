package validator

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/llcheck/internal/document"
)

func doc(t *testing.T, src string) document.Value {
	t.Helper()
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &node))
	return document.FromYAMLNode(&node)
}

const validDoc = `
ll_filespace: fs1
ll_username: bob
ll_mount_point: /mnt/x
ll_cache_location: /var/cache/x
ll_data_cache_size: 10G
servers:
  - ip: 10.0.0.1
    hostname: h1
`

func TestValidateConfig_Valid(t *testing.T) {
	assert.Empty(t, ValidateConfig(doc(t, validDoc)))
}

func TestValidateConfig_MissingAndWrongType(t *testing.T) {
	got := ValidateConfig(doc(t, `
ll_mount_point: relative/path
servers: not-a-list
`))

	assert.Equal(t, []string{
		"Missing required field: ll_filespace",
		"Missing required field: ll_username",
		"Missing required field: ll_cache_location",
		"Missing required field: ll_data_cache_size",
		"Field servers must be of type list",
		"Mount point must be an absolute path",
	}, got)
}

func TestValidateConfig_ServerErrors(t *testing.T) {
	got := ValidateConfig(doc(t, `
ll_filespace: fs1
ll_username: bob
ll_mount_point: /mnt/x
ll_cache_location: /var/cache/x
ll_data_cache_size: 10G
servers:
  - ip: 12345
    hostname: h1
  - oops
`))

	assert.Equal(t, []string{
		"Server 1: Server 'ip' must be a string",
		"Server 2: Server entry must be a dictionary",
	}, got)
}

func TestValidateConfig_Cases(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "empty document reports every field missing",
			src:  "",
			want: []string{
				"Missing required field: ll_filespace",
				"Missing required field: ll_username",
				"Missing required field: ll_mount_point",
				"Missing required field: ll_cache_location",
				"Missing required field: ll_data_cache_size",
				"Missing required field: servers",
			},
		},
		{
			name: "top-level list degenerates to every field missing",
			src:  "- ll_filespace\n- servers\n",
			want: []string{
				"Missing required field: ll_filespace",
				"Missing required field: ll_username",
				"Missing required field: ll_mount_point",
				"Missing required field: ll_cache_location",
				"Missing required field: ll_data_cache_size",
				"Missing required field: servers",
			},
		},
		{
			name: "every field with the wrong type",
			src: `
ll_filespace: 1
ll_username: true
ll_mount_point: [a]
ll_cache_location: {a: b}
ll_data_cache_size: 10
servers: {ip: x}
`,
			want: []string{
				"Field ll_filespace must be of type string",
				"Field ll_username must be of type string",
				"Field ll_mount_point must be of type string",
				"Field ll_cache_location must be of type string",
				"Field ll_data_cache_size must be of type string",
				"Field servers must be of type list",
			},
		},
		{
			name: "null values are present but not strings",
			src: `
ll_filespace: fs1
ll_username: bob
ll_mount_point:
ll_cache_location: ~
ll_data_cache_size: 10G
servers: []
`,
			want: []string{
				"Field ll_mount_point must be of type string",
				"Field ll_cache_location must be of type string",
			},
		},
		{
			name: "both paths relative",
			src: `
ll_filespace: fs1
ll_username: bob
ll_mount_point: mnt/x
ll_cache_location: ./cache
ll_data_cache_size: 10G
servers: []
`,
			want: []string{
				"Mount point must be an absolute path",
				"Cache location must be an absolute path",
			},
		},
		{
			name: "empty path string is not absolute",
			src: `
ll_filespace: fs1
ll_username: bob
ll_mount_point: ""
ll_cache_location: /
ll_data_cache_size: 10G
servers: []
`,
			want: []string{
				"Mount point must be an absolute path",
			},
		},
		{
			name: "server entries missing fields",
			src: `
ll_filespace: fs1
ll_username: bob
ll_mount_point: /mnt/x
ll_cache_location: /var/cache/x
ll_data_cache_size: 10G
servers:
  - {}
  - ip: 10.0.0.2
  - hostname: h3
  - ip: ~
    hostname: [h4]
  - ip: 10.0.0.5
    hostname: h5
    rack: 7
`,
			want: []string{
				"Server 1: Server missing 'ip' field",
				"Server 1: Server missing 'hostname' field",
				"Server 2: Server missing 'hostname' field",
				"Server 3: Server missing 'ip' field",
				"Server 4: Server 'ip' must be a string",
				"Server 4: Server 'hostname' must be a string",
			},
		},
		{
			name: "non-mapping server entries",
			src: `
ll_filespace: fs1
ll_username: bob
ll_mount_point: /mnt/x
ll_cache_location: /var/cache/x
ll_data_cache_size: 10G
servers:
  - 42
  - [ip, hostname]
  -
`,
			want: []string{
				"Server 1: Server entry must be a dictionary",
				"Server 2: Server entry must be a dictionary",
				"Server 3: Server entry must be a dictionary",
			},
		},
		{
			name: "all error groups in order",
			src: `
ll_username: 7
ll_mount_point: mnt
ll_cache_location: cache
servers:
  - hostname: 1
`,
			want: []string{
				"Missing required field: ll_filespace",
				"Field ll_username must be of type string",
				"Missing required field: ll_data_cache_size",
				"Server 1: Server missing 'ip' field",
				"Server 1: Server 'hostname' must be a string",
				"Mount point must be an absolute path",
				"Cache location must be an absolute path",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateConfig(doc(t, tt.src)))
		})
	}
}

func TestValidateConfig_ScalarTopLevel(t *testing.T) {
	for _, v := range []document.Value{document.Null(), document.String("x"), document.Scalar(3)} {
		got := ValidateConfig(v)
		require.Len(t, got, 6)
		for _, msg := range got {
			assert.Contains(t, msg, "Missing required field: ")
		}
	}
}

func TestValidateServer(t *testing.T) {
	tests := []struct {
		name  string
		entry document.Value
		want  []string
	}{
		{
			name:  "not a mapping",
			entry: document.String("oops"),
			want:  []string{"Server entry must be a dictionary"},
		},
		{
			name:  "null entry",
			entry: document.Null(),
			want:  []string{"Server entry must be a dictionary"},
		},
		{
			name:  "empty mapping",
			entry: document.NewMapping(),
			want:  []string{"Server missing 'ip' field", "Server missing 'hostname' field"},
		},
		{
			name: "valid",
			entry: func() document.Value {
				m := document.NewMapping()
				m.Set("hostname", document.String("h1"))
				m.Set("ip", document.String("10.0.0.1"))
				return m
			}(),
			want: []string{},
		},
		{
			name: "ip wrong type",
			entry: func() document.Value {
				m := document.NewMapping()
				m.Set("ip", document.Scalar(12345))
				m.Set("hostname", document.String("h1"))
				return m
			}(),
			want: []string{"Server 'ip' must be a string"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateServer(tt.entry))
		})
	}
}

func TestValidator_IssueFields(t *testing.T) {
	result := New().Validate(doc(t, `
ll_filespace: fs1
ll_username: bob
ll_mount_point: mnt
ll_cache_location: /var/cache/x
ll_data_cache_size: 10G
servers:
  - ip: 1
    hostname: h1
  - oops
`))

	require.Len(t, result.Issues, 3)

	assert.Equal(t, "servers[0].ip", result.Issues[0].Field)
	assert.Equal(t, "1", result.Issues[0].Context["server"])
	assert.Equal(t, "servers[1]", result.Issues[1].Field)
	assert.Equal(t, "2", result.Issues[1].Context["server"])
	assert.Equal(t, "ll_mount_point", result.Issues[2].Field)
	assert.Equal(t, "mnt", result.Issues[2].Value)
}

func TestValidateConfig_Idempotent(t *testing.T) {
	d := doc(t, `
ll_mount_point: relative
servers:
  - ip: 1
  - x
`)
	first := ValidateConfig(d)
	second := ValidateConfig(d)
	assert.Equal(t, first, second)

	// The document itself is untouched.
	assert.Equal(t, []string{"ll_mount_point", "servers"}, d.Keys())
}

func TestValidator_ConcurrentUse(t *testing.T) {
	v := New()
	d := doc(t, validDoc)
	bad := doc(t, "servers: [oops]\n")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.True(t, v.Validate(d).Valid())
			} else {
				assert.Contains(t, v.Validate(bad).Messages(), "Server 1: Server entry must be a dictionary")
			}
		}(i)
	}
	wg.Wait()
}
