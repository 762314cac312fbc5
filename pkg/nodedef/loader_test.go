package nodedef_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atkphpframework/atk/pkg/attribute"
	"github.com/atkphpframework/atk/pkg/nodedef"
	"github.com/atkphpframework/atk/pkg/record"
)

const memberYAML = `
nodes:
  member:
    attributes:
      - name: code
        type: format
        format: "AAA/##/##"
        flags: [obligatory]
        help: "<p>Three letters, a slash, then two alphanumeric pairs.</p>"
      - name: name
        type: string
        size: 50
`

func TestLoadFSAndBuild(t *testing.T) {
	store, err := nodedef.LoadFS(fstest.MapFS{
		"member.yaml": {Data: []byte(memberYAML)},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"member"}, store.Names())

	n, err := store.Build("member")
	require.NoError(t, err)
	require.Len(t, n.Attributes(), 2)

	code, ok := n.Attribute("code")
	require.True(t, ok)
	assert.True(t, code.Flags().Has(attribute.FlagObligatory))
	assert.Equal(t, 9, code.ColumnWidth())

	fa, ok := code.(*attribute.FormatAttribute)
	require.True(t, ok)
	assert.Equal(t, "AAA/##/##", fa.Format())

	var collector attribute.Collector
	n.Validate(record.Record{"code": "ab1/12/xy"}, "update", &collector)
	require.Len(t, collector.Errors, 1)
	assert.Equal(t, attribute.CodeFormatMismatch, collector.Errors[0].Code)
}

func TestLoadFSNilFilesystem(t *testing.T) {
	store, err := nodedef.LoadFS(nil)
	require.NoError(t, err)
	assert.Empty(t, store.Names())
}

func TestLoadFSRejectsDuplicateNodes(t *testing.T) {
	_, err := nodedef.LoadFS(fstest.MapFS{
		"a.yaml": {Data: []byte("nodes:\n  member:\n    attributes: []\n")},
		"b.yml":  {Data: []byte("nodes:\n  member:\n    attributes: []\n")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate node "member"`)
}

func TestLoadFSValidatesDefinitions(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "format without mask",
			yaml: "nodes:\n  m:\n    attributes:\n      - name: code\n        type: format\n",
			want: "format type requires a mask",
		},
		{
			name: "duplicate attribute",
			yaml: "nodes:\n  m:\n    attributes:\n      - name: code\n      - name: code\n",
			want: `declares attribute "code" twice`,
		},
		{
			name: "nameless attribute",
			yaml: "nodes:\n  m:\n    attributes:\n      - type: string\n",
			want: "without a name",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := nodedef.LoadFS(fstest.MapFS{"def.yaml": {Data: []byte(tc.yaml)}})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestBuildRejectsUnknownTypeAndFlag(t *testing.T) {
	store, err := nodedef.LoadFS(fstest.MapFS{
		"def.yaml": {Data: []byte("nodes:\n  m:\n    attributes:\n      - name: x\n        type: blob\n")},
	})
	require.NoError(t, err)
	_, err = store.Build("m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown type "blob"`)

	store, err = nodedef.LoadFS(fstest.MapFS{
		"def.yaml": {Data: []byte("nodes:\n  m:\n    attributes:\n      - name: x\n        flags: [sparkly]\n")},
	})
	require.NoError(t, err)
	_, err = store.Build("m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown flag "sparkly"`)
}

func TestBuildUnknownNode(t *testing.T) {
	store, err := nodedef.LoadFS(nil)
	require.NoError(t, err)
	_, err = store.Build("ghost")
	require.Error(t, err)
}

func TestHelpIsSanitized(t *testing.T) {
	store, err := nodedef.LoadFS(fstest.MapFS{
		"member.yaml": {Data: []byte(`
nodes:
  member:
    attributes:
      - name: code
        type: format
        format: "AAA"
        help: "<p>ok</p><script>alert(1)</script>"
`)},
	})
	require.NoError(t, err)

	help := store.Help("member", "code")
	assert.Contains(t, help, "<p>ok</p>")
	assert.NotContains(t, help, "script")

	assert.Empty(t, store.Help("member", "missing"))
	assert.Empty(t, store.Help("ghost", "code"))
}

func TestSanitizeHelp(t *testing.T) {
	assert.Equal(t, "", nodedef.SanitizeHelp("   "))
	assert.Equal(t, "<strong>x</strong>", nodedef.SanitizeHelp("<strong onclick=\"x()\">x</strong>"))
}
