// go test github.com/ZulvikaK/bookstore/bookstore -v
package bookstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lookupInputHeader = []string{"userID", "token"}

func TestUserLookupFlow(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected UserLookupResult
		kind     OutcomeKind
	}{
		{
			name:   "found with books",
			status: 200,
			body: `{"userId":"u-1","username":"PixelPusher22","books":[
				{"isbn":"9781449325862","title":"Git Pocket Guide","author":"Richard E. Silverman"},
				{"isbn":"9781449331818","title":"Learning JavaScript Design Patterns"}]}`,
			expected: UserLookupResult{
				UserID:     "u-1",
				StatusCode: 200,
				Username:   "PixelPusher22",
				Books:      "Git Pocket Guide by Richard E. Silverman (ISBN: 9781449325862); Learning JavaScript Design Patterns by Unknown Author (ISBN: 9781449331818)",
			},
			kind: Success,
		},
		{
			name:     "found without books",
			status:   200,
			body:     `{"userId":"u-1","username":"PixelPusher22","books":[]}`,
			expected: UserLookupResult{UserID: "u-1", StatusCode: 200, Username: "PixelPusher22", Books: NoBooksFound},
			kind:     Success,
		},
		{
			name:     "not authorized",
			status:   401,
			body:     `{"code":"1200","message":"User not authorized!"}`,
			expected: UserLookupResult{UserID: "u-1", StatusCode: 401, Message: "User not authorized!", Books: NoBooksFound},
			kind:     ClientError,
		},
		{
			name:     "code table on 400",
			status:   400,
			body:     `{"code":"1207","message":"something else"}`,
			expected: UserLookupResult{UserID: "u-1", StatusCode: 400, Message: MessageUserNotFound, Books: NoBooksFound},
			kind:     ClientError,
		},
		{
			name:     "server error text",
			status:   503,
			body:     `Service Unavailable`,
			expected: UserLookupResult{UserID: "u-1", StatusCode: 503, Message: "Service Unavailable", Books: NoBooksFound},
			kind:     ServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake, client := newFakeBookstore(t, map[string]cannedResponse{
				"GET /Account/v1/User/u-1": {tt.status, tt.body},
			})
			flow := &UserLookupFlow{Client: client}

			out, requested := flow.Handle(context.Background(), inputRow(lookupInputHeader, "u-1", "tok"))
			assert.True(t, requested)
			result, ok := out.(UserLookupResult)
			require.True(t, ok)
			assert.Equal(t, tt.kind, result.Outcome().Kind)
			result.outcome = Outcome{}
			assert.Equal(t, tt.expected, result)
			assert.Len(t, fake.Requests(), 1)
		})
	}
}

func TestUserLookupFlow_MissingFields(t *testing.T) {
	fake, client := newFakeBookstore(t, nil)
	flow := &UserLookupFlow{Client: client}

	out, requested := flow.Handle(context.Background(), inputRow(lookupInputHeader, "u-1", ""))
	assert.False(t, requested)
	assert.Equal(t, []string{"u-1", "400", MessageUserIDAndTokenMissing, "", NoBooksFound}, out.Values())
	assert.Equal(t, ClientError, out.Outcome().Kind)
	assert.Empty(t, fake.Requests())
}

func TestUserLookupFlow_TransportError(t *testing.T) {
	flow := &UserLookupFlow{Client: newTestClient(t, closedServerURL())}

	out, requested := flow.Handle(context.Background(), inputRow(lookupInputHeader, "u-1", "tok"))
	assert.True(t, requested)
	assert.Equal(t, TransportError, out.Outcome().Kind)
	values := out.Values()
	assert.Equal(t, "", values[1])
	assert.NotEmpty(t, values[2])
	assert.Equal(t, NoBooksFound, values[4])
}
