// Package channel holds the channel record and the request payloads for
// each operation on it.
//
// Every operation gets its own payload type: Create requires the full
// record, Update only knows about the mutable fields, Read and Delete only
// carry the identifier. A field meant for one operation therefore cannot
// silently affect another.
package channel

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all payloads; validator.Validate is safe for
// concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON names ("channel_id") instead of Go names ("ChannelID").
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Tag.Get("param")
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// Channel is the read model returned by GET /channel/:channel_id.
//
// Every field is a pointer: a field is omitted from the response only
// when it is absent, never because it holds a zero value. suppress=false
// is a real value and is always serialized when known.
type Channel struct {
	ChannelID   *int64  `json:"channel_id,omitempty"`
	ChannelName *string `json:"channel_name,omitempty"`
	GuildID     *int64  `json:"guild_id,omitempty"`
	GuildName   *string `json:"guild_name,omitempty"`
	Suppress    *bool   `json:"suppress,omitempty"`
}

// CreateChannelPayload is the body of POST /channel.
//
// The integer ids are pointers so that "required" means "present" and a
// literal 0 is still accepted.
type CreateChannelPayload struct {
	ChannelID   *int64 `json:"channel_id" validate:"required"`
	ChannelName string `json:"channel_name" validate:"required"`
	GuildID     *int64 `json:"guild_id" validate:"required"`
	GuildName   string `json:"guild_name" validate:"required"`
	AddedBy     *int64 `json:"added_by" validate:"required"`
	Suppress    *bool  `json:"suppress"`
}

func (p *CreateChannelPayload) Validate() error {
	return validate.Struct(p)
}

// SuppressOrDefault returns the requested suppress flag, false when omitted.
func (p *CreateChannelPayload) SuppressOrDefault() bool {
	if p.Suppress == nil {
		return false
	}
	return *p.Suppress
}

// GetChannelPayload identifies the record for GET /channel/:channel_id.
type GetChannelPayload struct {
	ChannelID int64 `param:"channel_id" json:"-"`
}

func (p *GetChannelPayload) Validate() error {
	return nil
}

// UpdateChannelPayload is the merge-update request for PUT /channel/:channel_id.
//
// Only suppress is mutable. nil means "keep the stored value"; any
// explicit value, including false, overwrites it.
type UpdateChannelPayload struct {
	ChannelID int64 `param:"channel_id" json:"-"`
	Suppress  *bool `json:"suppress"`
}

func (p *UpdateChannelPayload) Validate() error {
	return validate.Struct(p)
}

// DeleteChannelPayload identifies the record for DELETE /channel/:channel_id.
type DeleteChannelPayload struct {
	ChannelID int64 `param:"channel_id" json:"-"`
}

func (p *DeleteChannelPayload) Validate() error {
	return nil
}
