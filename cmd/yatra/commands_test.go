package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/yatra/internal/chatbot"
	yatraerrors "github.com/alexisbeaulieu97/yatra/pkg/errors"
)

func TestChatAnswersLocally(t *testing.T) {
	out, _, err := execute(t, "chat", "Plan", "a", "trip", "to", "Goa")
	require.NoError(t, err)
	require.Equal(t, chatbot.Respond("Plan a trip to Goa")+"\n", out)
}

func TestChatRemoteSendsMessage(t *testing.T) {
	stub, url := newAPIStub(t, http.StatusOK, `{"reply":"hello"}`)

	out, _, err := execute(t, "--api-url", url, "chat", "--remote", "hi", "there")
	require.NoError(t, err)
	require.Contains(t, out, `"reply": "hello"`)

	reqs := stub.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/chatbot/message", reqs[0].Path)
	assert.Equal(t, "hi there", reqs[0].json(t)["message"])
}

func TestPlanPostsAllFields(t *testing.T) {
	stub, url := newAPIStub(t, http.StatusOK, `{}`)

	_, _, err := execute(t, "--api-url", url, "plan", "--destination", "Goa", "--budget", "20000", "--duration", "3 days")
	require.NoError(t, err)

	reqs := stub.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/chatbot/travel-plan", reqs[0].Path)
	assert.Equal(t, map[string]any{"destination": "Goa", "budget": "20000", "duration": "3 days"}, reqs[0].json(t))
}

func TestPlanRequiresFlags(t *testing.T) {
	_, _, err := execute(t, "plan", "--destination", "Goa")
	require.Error(t, err)
	require.Contains(t, err.Error(), "budget")
}

func TestStatesListUsesBundledData(t *testing.T) {
	out, _, err := execute(t, "states", "list")
	require.NoError(t, err)
	require.Contains(t, out, "ID")
	require.Contains(t, out, "goa")
	require.Contains(t, out, "Goa")
}

func TestStatesShow(t *testing.T) {
	out, _, err := execute(t, "states", "show", "goa")
	require.NoError(t, err)
	require.Contains(t, out, "Goa")
	require.Contains(t, out, "Tourist attractions:")
	require.Contains(t, out, "Restaurants:")
}

func TestStatesShowUnknown(t *testing.T) {
	_, _, err := execute(t, "states", "show", "atlantis")
	require.Error(t, err)
	require.Contains(t, err.Error(), "State not found")

	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
}

func TestStatesShowRemote(t *testing.T) {
	stub, url := newAPIStub(t, http.StatusOK, `{"id":"goa"}`)

	_, _, err := execute(t, "--api-url", url, "states", "show", "--remote", "goa")
	require.NoError(t, err)
	require.Equal(t, "/states/goa", stub.all()[0].Path)
}

func TestRemoteFailureIsReported(t *testing.T) {
	_, url := newAPIStub(t, http.StatusInternalServerError, `{"error":"boom"}`)

	_, _, err := execute(t, "--api-url", url, "states", "list", "--remote")
	require.Error(t, err)
	require.Contains(t, err.Error(), "calling the travel API")

	var reqErr *yatraerrors.RequestError
	require.ErrorAs(t, err, &reqErr)
}

func TestPostsListUsesBundledData(t *testing.T) {
	out, _, err := execute(t, "posts", "list")
	require.NoError(t, err)
	require.Contains(t, out, "LIKES")
	require.Contains(t, out, "CAPTION")
}

func TestPostsCreateValidates(t *testing.T) {
	_, _, err := execute(t, "posts", "create", "--caption", "Sunset", "--location", "Goa")
	require.Error(t, err)

	var verr *yatraerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "image", verr.Field)
}

func TestPostsCreateSendsMultipart(t *testing.T) {
	stub, url := newAPIStub(t, http.StatusCreated, `{"id":"p9"}`)

	_, _, err := execute(t, "--api-url", url, "posts", "create", "--caption", "Sunset", "--location", "Goa", "--image", "beach.jpg")
	require.NoError(t, err)

	reqs := stub.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/posts", reqs[0].Path)
	assert.Equal(t, map[string]string{"caption": "Sunset", "location": "Goa"}, reqs[0].Form)
}

func TestPostsLikeAndComment(t *testing.T) {
	stub, url := newAPIStub(t, http.StatusOK, `{}`)

	_, _, err := execute(t, "--api-url", url, "posts", "like", "1")
	require.NoError(t, err)
	_, _, err = execute(t, "--api-url", url, "posts", "comment", "1", "Lovely", "view")
	require.NoError(t, err)

	reqs := stub.all()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/posts/1/like", reqs[0].Path)
	assert.Equal(t, "/posts/1/comment", reqs[1].Path)
	assert.Equal(t, "Lovely view", reqs[1].json(t)["comment"])
}

func TestPostsCommentRejectsBlank(t *testing.T) {
	_, _, err := execute(t, "posts", "comment", "1", "   ")
	require.Error(t, err)
	require.Equal(t, "Please enter a comment", yatraerrors.UserMessage(err, ""))
}

func TestMapSendsCoordinates(t *testing.T) {
	stub, url := newAPIStub(t, http.StatusOK, `[]`)

	_, _, err := execute(t, "--api-url", url, "map", "spots")
	require.NoError(t, err)
	_, _, err = execute(t, "--api-url", url, "map", "restaurants", "--lat", "15.5", "--lon", "73.8", "--radius", "5")
	require.NoError(t, err)

	reqs := stub.all()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/map/tourist-spots", reqs[0].Path)
	assert.Equal(t, map[string]string{"latitude": "20.5937", "longitude": "78.9629", "radius": "50"}, reqs[0].Query)
	assert.Equal(t, "/map/restaurants", reqs[1].Path)
	assert.Equal(t, map[string]string{"latitude": "15.5", "longitude": "73.8", "radius": "5"}, reqs[1].Query)
}

func TestProfileShowUsesBundledData(t *testing.T) {
	out, _, err := execute(t, "profile", "show")
	require.NoError(t, err)
	require.Contains(t, out, `"savedPlans"`)

	_, _, err = execute(t, "profile", "show", "someone-else")
	require.Error(t, err)
}

func TestProfileUpdateSendsOnlyChangedFields(t *testing.T) {
	stub, url := newAPIStub(t, http.StatusOK, `{}`)

	_, _, err := execute(t, "--api-url", url, "profile", "update", "user-1", "--bio", "Chasing monsoons")
	require.NoError(t, err)

	reqs := stub.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPut, reqs[0].Method)
	assert.Equal(t, "/profile/user-1", reqs[0].Path)
	assert.Equal(t, map[string]any{"bio": "Chasing monsoons"}, reqs[0].json(t))
}

func TestProfileUpdateValidates(t *testing.T) {
	_, _, err := execute(t, "profile", "update")
	require.Error(t, err)

	_, _, err = execute(t, "profile", "update", "--name", " ")
	require.Error(t, err)
	require.Equal(t, "Please enter your name", yatraerrors.UserMessage(err, ""))
}

func TestAuthValidatesBeforeCalling(t *testing.T) {
	stub, url := newAPIStub(t, http.StatusOK, `{}`)

	_, _, err := execute(t, "--api-url", url, "auth", "login", "--email", "not-an-email", "--password", "secret")
	require.Error(t, err)
	require.Equal(t, "Please enter a valid email address", yatraerrors.UserMessage(err, ""))

	_, _, err = execute(t, "--api-url", url, "auth", "signup", "--username", "asha", "--email", "asha@example.com", "--password", "123")
	require.Error(t, err)

	require.Empty(t, stub.all())
}

func TestAuthCommands(t *testing.T) {
	stub, url := newAPIStub(t, http.StatusOK, `{"token":"abc"}`)

	_, _, err := execute(t, "--api-url", url, "auth", "login", "--email", "asha@example.com", "--password", "secret")
	require.NoError(t, err)
	_, _, err = execute(t, "--api-url", url, "auth", "signup", "--username", "asha", "--email", "asha@example.com", "--password", "secret1")
	require.NoError(t, err)
	_, stderr, err := execute(t, "--api-url", url, "auth", "forgot-password", "--email", "asha@example.com")
	require.NoError(t, err)
	require.Contains(t, stderr, "Password reset link has been sent to your email!")

	reqs := stub.all()
	require.Len(t, reqs, 3)
	assert.Equal(t, "/auth/login", reqs[0].Path)
	assert.Equal(t, map[string]any{"email": "asha@example.com", "password": "secret"}, reqs[0].json(t))
	assert.Equal(t, "/auth/signup", reqs[1].Path)
	assert.Equal(t, "/auth/forgot-password", reqs[2].Path)
}
