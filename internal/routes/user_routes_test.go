package routes

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayvista_server/internal/models"
)

func TestUpsertUser_FirstLoginCreatesWithTimestamp(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/user", map[string]string{
		"email": "new@example.com",
		"name":  "New Guest",
		"role":  "guest",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var ack map[string]interface{}
	decodeJSON(t, w, &ack)
	assert.Equal(t, true, ack["acknowledged"])

	user, err := env.store.FindUserByEmail("new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "guest", user.Role)
	assert.False(t, user.Timestamp.IsZero(), "first-seen timestamp must be stamped")
}

func TestUpsertUser_RepeatLoginReturnsStoredRecordUnchanged(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{"email": "repeat@example.com", "name": "First Name", "role": "guest"}
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPut, "/user", payload).Code)

	before, err := env.store.FindUserByEmail("repeat@example.com")
	require.NoError(t, err)

	// second login with a different name must not overwrite anything
	w := env.do(t, http.MethodPut, "/user", map[string]string{
		"email": "repeat@example.com",
		"name":  "Changed Name",
		"role":  "guest",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var returned models.User
	decodeJSON(t, w, &returned)
	assert.Equal(t, before.Name, returned.Name)

	after, err := env.store.FindUserByEmail("repeat@example.com")
	require.NoError(t, err)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Timestamp.Unix(), after.Timestamp.Unix())
}

func TestUpsertUser_RequestedStatusUpdatesOnlyStatus(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "wannahost@example.com", "guest")

	w := env.do(t, http.MethodPut, "/user", map[string]string{
		"email":  "wannahost@example.com",
		"name":   "Someone Else",
		"role":   "host",
		"status": "Requested",
	})
	require.Equal(t, http.StatusOK, w.Code)

	user, err := env.store.FindUserByEmail("wannahost@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Requested", user.Status)
	assert.Equal(t, "guest", user.Role, "role must not change on a status request")
	assert.Equal(t, "Test guest", user.Name, "other fields must not change")
}

func TestGetUser_AbsentEmailYieldsNullBody(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/user/nobody@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestListUsers_RequiresSession(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@example.com", "admin")

	w := env.do(t, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	decodeJSON(t, w, &body)
	assert.Equal(t, "unauthorized access", body["message"])

	// collection untouched
	n, err := env.store.CountUsers()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestListUsers_RequiresAdminRole(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "guest@example.com", "guest")
	cookie := env.login(t, "guest@example.com")

	w := env.do(t, http.MethodGet, "/users", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListUsers_AdminSeesEveryone(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@example.com", "admin")
	env.seedUser(t, "guest@example.com", "guest")
	cookie := env.login(t, "admin@example.com")

	w := env.do(t, http.MethodGet, "/users", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	decodeJSON(t, w, &users)
	assert.Len(t, users, 2)
}

func TestRoleGuard_ReadsLiveRoleNotToken(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "mutable@example.com", "guest")
	cookie := env.login(t, "mutable@example.com")

	require.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/users", nil, cookie).Code)

	// promote in the store; the very same cookie must now pass
	user, err := env.store.FindUserByEmail("mutable@example.com")
	require.NoError(t, err)
	user.Role = "admin"
	require.NoError(t, env.store.SaveUser(&user))

	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/users", nil, cookie).Code)
}

func TestUpdateUser_PatchesFieldsAndStampsTime(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "patch@example.com", "guest")

	w := env.do(t, http.MethodPatch, "/user/update/patch@example.com", map[string]string{
		"role":   "host",
		"status": "Verified",
	})
	require.Equal(t, http.StatusOK, w.Code)

	user, err := env.store.FindUserByEmail("patch@example.com")
	require.NoError(t, err)
	assert.Equal(t, "host", user.Role)
	assert.Equal(t, "Verified", user.Status)
	assert.Equal(t, "Test guest", user.Name, "unsupplied fields keep their values")
}

func TestUpdateUser_UnknownEmailIs404(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPatch, "/user/update/ghost@example.com", map[string]string{"role": "host"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
