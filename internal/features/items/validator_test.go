package items

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func validCreateRequest() *CreateItemRequest {
	return &CreateItemRequest{
		Title:       "Black wallet",
		Description: "Leather, slightly worn",
		Kind:        KindLost,
		Location:    "Bus stop 12",
		ContactInfo: "081234567",
	}
}

func TestValidateCreateItemRequest(t *testing.T) {
	require.Nil(t, ValidateCreateItemRequest(validCreateRequest()))

	missingTitle := validCreateRequest()
	missingTitle.Title = "   "
	err := ValidateCreateItemRequest(missingTitle)
	require.NotNil(t, err)
	require.Equal(t, "title", err.Field)

	missingLocation := validCreateRequest()
	missingLocation.Location = ""
	err = ValidateCreateItemRequest(missingLocation)
	require.NotNil(t, err)
	require.Equal(t, "location", err.Field)

	missingContact := validCreateRequest()
	missingContact.ContactInfo = ""
	err = ValidateCreateItemRequest(missingContact)
	require.NotNil(t, err)
	require.Equal(t, "contact_info", err.Field)

	badKind := validCreateRequest()
	badKind.Kind = Kind("misplaced")
	err = ValidateCreateItemRequest(badKind)
	require.NotNil(t, err)
	require.Equal(t, "item_type", err.Field)

	longDesc := validCreateRequest()
	longDesc.Description = strings.Repeat("x", 2001)
	err = ValidateCreateItemRequest(longDesc)
	require.NotNil(t, err)
	require.Equal(t, "description", err.Field)
}

func TestValidateUpdateItemRequestSkipsNilFields(t *testing.T) {
	require.Nil(t, ValidateUpdateItemRequest(&UpdateItemRequest{}))

	empty := ""
	err := ValidateUpdateItemRequest(&UpdateItemRequest{Location: &empty})
	require.NotNil(t, err)
	require.Equal(t, "location", err.Field)

	bad := Status("gone")
	err = ValidateUpdateItemRequest(&UpdateItemRequest{Status: &bad})
	require.NotNil(t, err)
	require.Equal(t, "status", err.Field)
}

func TestValidateFilterSpec(t *testing.T) {
	require.Nil(t, ValidateFilterSpec(DefaultFilter(KindAll)))
	require.Nil(t, ValidateFilterSpec(DefaultFilter(KindLost)))

	bad := DefaultFilter(KindLost)
	bad.Sort = Sort("loudest")
	err := ValidateFilterSpec(bad)
	require.NotNil(t, err)
	require.Equal(t, "sort", err.Field)
}
