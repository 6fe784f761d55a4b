package listapi

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// ListResource is the get list response:
//
//	{
//	    "data": {
//	        "id": "...",
//	        "type": "lists",
//	        "attributes": {
//	            "title": "The list title",
//	            "last_published": "2023-01-01T09:00:00+00:00",
//	            ...
//	        }
//	    }
//	}
type ListResource struct {
	Data ListData `mapstructure:"data"`

	// Raw is the whole decoded body, including anything not mapped above.
	Raw map[string]interface{} `mapstructure:"-"`
}

// ListData is the JSON:API resource object of a list.
type ListData struct {
	ID         string         `mapstructure:"id"`
	Type       string         `mapstructure:"type"`
	Attributes ListAttributes `mapstructure:"attributes"`
}

// ListAttributes are the list's attributes. Title and LastPublished are
// empty when the API omits them.
type ListAttributes struct {
	Title         string `mapstructure:"title"`
	LastPublished string `mapstructure:"last_published"`

	// Extra holds the attributes not named above.
	Extra map[string]interface{} `mapstructure:",remain"`
}

func decodeListResource(raw map[string]interface{}) (*ListResource, error) {
	data, ok := raw["data"].(map[string]interface{})
	if !ok {
		return nil, ErrUnexpectedShape
	}
	if _, ok := data["attributes"].(map[string]interface{}); !ok {
		return nil, ErrUnexpectedShape
	}

	l := &ListResource{Raw: raw}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           l,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode list resource: %w", err)
	}
	return l, nil
}
