package mmws

import (
	"context"
	"fmt"
	"strings"

	"wwilson/ops-scripts/internal/apperror"
	"wwilson/ops-scripts/internal/logging"
)

// GetCurrentAddressSpace returns the address space active for this session.
func (c *Client) GetCurrentAddressSpace(ctx context.Context) (*CurrentAddressSpace, error) {
	var current CurrentAddressSpace
	if err := c.Get(ctx, "command/GetCurrentAddressSpace", "", &current); err != nil {
		return nil, err
	}
	return &current, nil
}

// SetCurrentAddressSpace makes ref the active address space.
func (c *Client) SetCurrentAddressSpace(ctx context.Context, ref string) error {
	body := map[string]string{"addressSpaceRef": ref}
	return c.Post(ctx, "command/SetCurrentAddressSpace", body, nil)
}

// FindAddressSpaces looks an address space up by ID when input is all digits,
// and by exact name otherwise.
func (c *Client) FindAddressSpaces(ctx context.Context, input string) (*AddressSpaceList, error) {
	var list AddressSpaceList
	if err := c.Get(ctx, "AddressSpaces", AddressSpaceFilter(input), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// SelectAddressSpace resolves input to an address space and makes it current.
// When the requested ID is already current no SetCurrentAddressSpace call is made.
// An input that matches nothing yields *apperror.AddressSpaceResolutionError.
func (c *Client) SelectAddressSpace(ctx context.Context, input string) (*AddressSpace, error) {
	log := c.logger.WithField(logging.FieldAddressSpace, input)
	log.Info("Selecting address space")

	current, err := c.GetCurrentAddressSpace(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting current address space: %w", err)
	}
	currentID := current.ID()

	currentSpace := AddressSpace{Ref: current.AddressSpaceRef}
	if list, err := c.FindAddressSpaces(ctx, currentID); err != nil {
		return nil, fmt.Errorf("error looking up current address space: %w", err)
	} else if len(list.AddressSpaces) > 0 {
		currentSpace = list.AddressSpaces[0]
	}

	if IsNumeric(input) && input == currentID {
		log.Info("Current address space is already selected",
			logging.Field{Key: "id", Value: currentID}, logging.Field{Key: "name", Value: currentSpace.Name})
		return &currentSpace, nil
	}

	list, err := c.FindAddressSpaces(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("error looking up address space: %w", err)
	}
	if list.TotalResults == 0 || len(list.AddressSpaces) == 0 {
		log.Warn("Address space not found for user input")
		return nil, &apperror.AddressSpaceResolutionError{Input: input}
	}
	if len(list.AddressSpaces) > 1 {
		log.Warn("More than one address space matched, using the first",
			logging.Field{Key: logging.FieldCount, Value: len(list.AddressSpaces)})
	}

	target := list.AddressSpaces[0]
	if target.Ref == current.AddressSpaceRef {
		log.Info("Current address space is already selected",
			logging.Field{Key: "id", Value: target.ID()}, logging.Field{Key: "name", Value: target.Name})
		return &target, nil
	}

	if err := c.SetCurrentAddressSpace(ctx, target.Ref); err != nil {
		return nil, fmt.Errorf("error setting address space: %w", err)
	}
	log.Info("Address space updated successfully",
		logging.Field{Key: "ref", Value: target.Ref}, logging.Field{Key: "name", Value: target.Name})
	return &target, nil
}

// AddressSpaceFilter builds the raw filter query for FindAddressSpaces.
//
//	"5"           -> filter=ref=%22AddressSpaces/5%22
//	"Corp-Site-A" -> filter=name=%40%22Corp-Site-A%22
func AddressSpaceFilter(input string) string {
	if IsNumeric(input) {
		return "filter=ref=" + Quote(`"AddressSpaces/`+input+`"`)
	}
	return "filter=name=" + Quote(`@"`+input+`"`)
}

// IsNumeric reports whether s is a non-empty run of ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Quote percent-escapes every byte except letters, digits, "_.-~" and "/".
func Quote(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ('0' <= ch && ch <= '9') ||
			strings.IndexByte("_.-~/", ch) >= 0 {
			b.WriteByte(ch)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", ch)
	}
	return b.String()
}
