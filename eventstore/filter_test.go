package eventstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libris-app/libris/eventstore"
)

//nolint:funlen
func Test_FilterBuilder_ValidCombinations(t *testing.T) {
	tests := []struct {
		name     string
		build    func() eventstore.Filter
		validate func(t *testing.T, filter eventstore.Filter)
	}{
		{
			name: "matching_any_event_creates_empty_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().MatchingAnyEvent()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Empty(t, f.Items())
			},
		},
		{
			name: "single_event_type_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("BookBorrowed").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []string{"BookBorrowed"}, f.Items()[0].EventTypes())
				assert.Empty(t, f.Items()[0].Predicates())
			},
		},
		{
			name: "multiple_event_types_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("BookBorrowed", "BookReturned").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []string{"BookBorrowed", "BookReturned"}, f.Items()[0].EventTypes())
			},
		},
		{
			name: "event_types_with_predicates_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("BookBorrowed", "BookReturned").
					AndAnyPredicateOf(
						eventstore.P("BookID", "book-1"),
						eventstore.P("UserID", "user-1"),
					).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Len(t, f.Items()[0].Predicates(), 2)
				assert.Equal(t, "BookID", f.Items()[0].Predicates()[0].Key())
				assert.Equal(t, "book-1", f.Items()[0].Predicates()[0].Val())
			},
		},
		{
			name: "multiple_filter_items_with_or_matching",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("BookBorrowed").
					AndAnyPredicateOf(eventstore.P("UserID", "user-1")).
					OrMatching().
					AnyEventTypeOf("BookAdded", "BookRemoved").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 2)
				assert.Equal(t, []string{"BookBorrowed"}, f.Items()[0].EventTypes())
				assert.Len(t, f.Items()[0].Predicates(), 1)
				assert.Equal(t, []string{"BookAdded", "BookRemoved"}, f.Items()[1].EventTypes())
				assert.Empty(t, f.Items()[1].Predicates())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			filter := tc.build()
			tc.validate(t, filter)
		})
	}
}

func Test_FilterBuilder_SanitizesEventTypes(t *testing.T) {
	// arrange & act
	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("BookReturned", "", "BookBorrowed", "BookBorrowed").
		Finalize()

	// assert - empty entries dropped, sorted, deduplicated
	assert.Equal(t, []string{"BookBorrowed", "BookReturned"}, filter.Items()[0].EventTypes())
}

func Test_FilterBuilder_SanitizesPredicates(t *testing.T) {
	// arrange & act
	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("BookBorrowed").
		AndAnyPredicateOf(
			eventstore.P("UserID", "user-1"),
			eventstore.P("", "value"),
			eventstore.P("BookID", ""),
			eventstore.P("BookID", "book-1"),
			eventstore.P("BookID", "book-1"),
		).
		Finalize()

	// assert - partial entries dropped, sorted by key, deduplicated
	predicates := filter.Items()[0].Predicates()
	assert.Len(t, predicates, 2)
	assert.Equal(t, "BookID", predicates[0].Key())
	assert.Equal(t, "UserID", predicates[1].Key())
}
