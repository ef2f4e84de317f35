package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-authenticator-bridge/internal/app"
	"github.com/MKhiriev/go-authenticator-bridge/internal/crypto"
	"github.com/MKhiriev/go-authenticator-bridge/models"
)

type bridgeCLI struct {
	t   *testing.T
	dir string
}

func newBridgeCLI(t *testing.T) *bridgeCLI {
	return &bridgeCLI{t: t, dir: t.TempDir()}
}

// run executes one command line against the same keychain file and
// database, the way two separate processes would.
func (b *bridgeCLI) run(stdin string, args ...string) (string, error) {
	b.t.Helper()
	out, _, err := b.exec(stdin, args...)
	return out, err
}

func (b *bridgeCLI) runWithStderr(args ...string) (string, string, error) {
	b.t.Helper()
	return b.exec("", args...)
}

func (b *bridgeCLI) exec(stdin string, args ...string) (string, string, error) {
	b.t.Helper()

	base := []string{
		"--keychain-backend", "file",
		"--keychain-file", filepath.Join(b.dir, "keychain.json"),
		"--store", "persisted",
		"--container-dir", b.dir,
		"--log-level", "error",
	}

	var out, errOut bytes.Buffer
	err := execute(context.Background(), append(args, base...), strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

func (b *bridgeCLI) mustRun(args ...string) string {
	b.t.Helper()
	out, err := b.run("", args...)
	require.NoError(b.t, err, "bridge %s", strings.Join(args, " "))
	return out
}

func (b *bridgeCLI) writeFile(name, content string) string {
	b.t.Helper()
	path := filepath.Join(b.dir, name)
	require.NoError(b.t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCLI_Version(t *testing.T) {
	var out bytes.Buffer
	err := execute(context.Background(), []string{"version"}, strings.NewReader(""), &out, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Build version: ")
	assert.Contains(t, out.String(), "Build commit: ")
}

func TestCLI_KeyLifecycle(t *testing.T) {
	b := newBridgeCLI(t)

	assert.Equal(t, app.MsgSyncOff+"\n", b.mustRun("key", "status"))

	out := b.mustRun("key", "init")
	assert.True(t, strings.HasPrefix(out, app.MsgKeyGenerated))
	fingerprint := out[strings.Index(out, "fingerprint ")+len("fingerprint ") : strings.Index(out, ")")]

	assert.Equal(t, app.MsgSyncOn+" (fingerprint "+fingerprint+")\n", b.mustRun("key", "status"))

	_, err := b.run("", "key", "init")
	assert.EqualError(t, err, app.MsgKeyAlreadyPresent)

	out = b.mustRun("key", "init", "--force")
	assert.NotContains(t, out, fingerprint)

	assert.Equal(t, app.MsgKeyDeleted+"\n", b.mustRun("key", "delete"))
	assert.Equal(t, app.MsgSyncOff+"\n", b.mustRun("key", "status"))
}

func TestCLI_KeySetFromStdin(t *testing.T) {
	b := newBridgeCLI(t)
	key := bytes.Repeat([]byte{0x42}, crypto.KeySize)

	out, err := b.run(base64.StdEncoding.EncodeToString(key)+"\n", "key", "set")
	require.NoError(t, err)
	assert.Equal(t, app.MsgKeyStored+" (fingerprint "+crypto.Fingerprint(key)+")\n", out)

	assert.Contains(t, b.mustRun("key", "status"), crypto.Fingerprint(key))

	_, err = b.run(base64.StdEncoding.EncodeToString([]byte("short"))+"\n", "key", "set")
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)

	_, err = b.run("not base64!\n", "key", "set")
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)
}

func listItems(t *testing.T, b *bridgeCLI, userID string) models.UserItems {
	t.Helper()
	var doc models.UserItems
	require.NoError(t, json.Unmarshal([]byte(b.mustRun("items", "list", "--json", "--user-id", userID)), &doc))
	return doc
}

func TestCLI_Items(t *testing.T) {
	b := newBridgeCLI(t)
	b.mustRun("key", "init")

	jsonExport := b.writeFile("export.json", `{"userId": "u1", "items": [
		{"id": "b", "name": "Mail", "totpKey": "JBSWY3DPEHPK3PXP"},
		{"id": "a", "name": "GitHub", "accountEmail": "octo@example.com"}
	]}`)
	yamlExport := b.writeFile("export.yaml", "items:\n  - name: Bank\n")

	assert.Equal(t, "imported 2 items for u1\n", b.mustRun("items", "import", jsonExport))

	doc := listItems(t, b, "u1")
	assert.Equal(t, "u1", doc.UserID)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "a", doc.Items[0].ID)
	assert.Equal(t, "GitHub", doc.Items[0].Name)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", *doc.Items[1].TotpKey)

	table := b.mustRun("items", "list", "--user-id", "u1")
	assert.Contains(t, table, "octo@example.com")
	assert.Contains(t, table, "GitHub")

	// the export names no account, --user-id supplies it
	assert.Equal(t, "replaced items of u1 with 1 items\n", b.mustRun("items", "replace", yamlExport, "--user-id", "u1"))
	doc = listItems(t, b, "u1")
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "Bank", doc.Items[0].Name)
	assert.NotEmpty(t, doc.Items[0].ID)

	assert.Equal(t, "deleted items of u1\n", b.mustRun("items", "delete", "--user-id", "u1"))
	assert.Empty(t, listItems(t, b, "u1").Items)
}

func TestCLI_ItemsNeedUser(t *testing.T) {
	b := newBridgeCLI(t)

	_, err := b.run("", "items", "list")
	assert.EqualError(t, err, app.MsgNoUserIDProvided)

	export := b.writeFile("export.json", `{"items": [{"id": "a", "name": "n"}]}`)
	_, err = b.run("", "items", "import", export)
	assert.EqualError(t, err, app.MsgNoUserIDProvided)
}

func TestCLI_ItemsWithoutKeyPersistNothing(t *testing.T) {
	b := newBridgeCLI(t)
	export := b.writeFile("export.json", `{"userId": "u1", "items": [{"id": "a", "name": "n"}]}`)

	_, err := b.run("", "items", "import", export)
	require.Error(t, err)

	b.mustRun("key", "init")
	assert.Empty(t, listItems(t, b, "u1").Items)
}

func TestCLI_Temp(t *testing.T) {
	b := newBridgeCLI(t)
	b.mustRun("key", "init")

	assert.Equal(t, app.MsgNoTemporaryItem+"\n", b.mustRun("temp", "pop"))

	assert.Equal(t, "parked t1\n", b.mustRun("temp", "push", "--id", "t1", "--name", "Scanned", "--totp", "SECRET"))
	b.mustRun("temp", "push", "--id", "t2", "--name", "Newer", "--totp", "SECRET2", "--email", "me@example.com")

	var item models.ItemView
	require.NoError(t, json.Unmarshal([]byte(b.mustRun("temp", "pop")), &item))
	assert.Equal(t, "t2", item.ID)
	assert.Equal(t, "Newer", item.Name)
	assert.Equal(t, "me@example.com", *item.AccountEmail)
	assert.Nil(t, item.Username)

	assert.Equal(t, app.MsgNoTemporaryItem+"\n", b.mustRun("temp", "pop"))

	_, err := b.run("", "temp", "push", "--id", "t3")
	require.Error(t, err)
}

func TestCLI_TempPopCopy(t *testing.T) {
	b := newBridgeCLI(t)
	b.mustRun("key", "init")

	var copied string
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = clipboard.WriteAll })

	b.mustRun("temp", "push", "--id", "t1", "--name", "Scanned", "--totp", "SECRET")

	var item models.ItemView
	require.NoError(t, json.Unmarshal([]byte(b.mustRun("temp", "pop", "--copy")), &item))
	assert.Equal(t, "t1", item.ID)
	assert.Nil(t, item.TotpKey)
	assert.Equal(t, "SECRET", copied)
}

func TestCLI_TempPopCopyWithoutClipboardKeepsSecret(t *testing.T) {
	b := newBridgeCLI(t)
	b.mustRun("key", "init")

	writeClipboard = func(string) error { return errors.New("no clipboard utilities available") }
	t.Cleanup(func() { writeClipboard = clipboard.WriteAll })

	b.mustRun("temp", "push", "--id", "t1", "--name", "Scanned", "--totp", "SECRET")

	out, errOut, err := b.runWithStderr("temp", "pop", "--copy")
	require.NoError(t, err)

	var item models.ItemView
	require.NoError(t, json.Unmarshal([]byte(out), &item))
	require.NotNil(t, item.TotpKey, "the popped item is the only copy left")
	assert.Equal(t, "SECRET", *item.TotpKey)
	assert.Contains(t, errOut, app.MsgClipboardUnavailable)

	// the item was still handed over
	assert.Equal(t, app.MsgNoTemporaryItem+"\n", b.mustRun("temp", "pop"))
}

func TestCLI_FeedOnce(t *testing.T) {
	b := newBridgeCLI(t)
	b.mustRun("key", "init")

	b.mustRun("items", "import", b.writeFile("u2.json", `{"userId": "u2", "items": [{"id": "z", "name": "Z"}]}`))
	b.mustRun("items", "import", b.writeFile("u1.json", `{"userId": "u1", "items": [{"id": "y", "name": "Y"}]}`))
	b.mustRun("temp", "push", "--id", "t", "--name", "T")

	var items []models.ItemView
	require.NoError(t, json.Unmarshal([]byte(b.mustRun("feed", "--once")), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "y", items[0].ID)
	assert.Equal(t, "z", items[1].ID)
}

func TestCLI_WatchNeedsVaultFile(t *testing.T) {
	b := newBridgeCLI(t)

	_, err := b.run("", "watch")
	assert.EqualError(t, err, app.MsgNoVaultFile)
}
