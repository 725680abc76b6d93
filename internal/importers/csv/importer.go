// Package csv decodes contact rows from CSV content.
//
// Every field passes through the domain's smart constructors; a row that
// fails validation is reported in the result rather than aborting the whole
// import. The expected header columns are:
//
//	first,middle,last,email,home_phone,work_phone,line1,line2,state,zip
//
// Column order is free and unknown columns are ignored. A row must yield at
// least one contact method; the first method present in the order email,
// postal, home phone, work phone becomes the primary.
package csv

import (
	encsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rolohq/rolo-cli/internal/core/domain"
)

// Known header columns.
const (
	colFirst     = "first"
	colMiddle    = "middle"
	colLast      = "last"
	colEmail     = "email"
	colHomePhone = "home_phone"
	colWorkPhone = "work_phone"
	colLine1     = "line1"
	colLine2     = "line2"
	colState     = "state"
	colZip       = "zip"
)

// Decoded is the outcome of decoding a CSV stream.
type Decoded struct {
	// Contacts are the successfully decoded contacts, in row order,
	// without IDs or timestamps. The caller assigns those on save.
	Contacts []domain.Contact

	// Failures are the rejected rows with their reasons.
	Failures []domain.RowError
}

// Decode reads CSV content and builds contacts through the domain
// constructors. It returns an error only when the stream itself is
// unreadable (missing header, malformed CSV); per-row validation failures
// land in Decoded.Failures.
func Decode(r io.Reader) (*Decoded, error) {
	reader := encsv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colFirst, colLast} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: header missing %q column", domain.ErrInvalidInput, required)
		}
	}

	out := &Decoded{}
	row := 1 // header was row 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			out.Failures = append(out.Failures, domain.RowError{Row: row, Reason: err.Error()})
			continue
		}

		contact, err := decodeRow(cols, record)
		if err != nil {
			out.Failures = append(out.Failures, domain.RowError{Row: row, Reason: err.Error()})
			continue
		}
		out.Contacts = append(out.Contacts, contact)
	}
	return out, nil
}

// decodeRow builds one contact from a record.
func decodeRow(cols map[string]int, record []string) (domain.Contact, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name, err := domain.NewPersonalName(field(colFirst), field(colMiddle), field(colLast))
	if err != nil {
		return domain.Contact{}, err
	}

	var methods []domain.ContactMethod

	if raw := field(colEmail); raw != "" {
		email, err := domain.NewEmailAddress(raw)
		if err != nil {
			return domain.Contact{}, err
		}
		methods = append(methods, domain.EmailMethod{Info: domain.EmailContactInfo{Email: email}})
	}

	if line1 := field(colLine1); line1 != "" {
		state, err := domain.NewStateCode(field(colState))
		if err != nil {
			return domain.Contact{}, err
		}
		zip, err := domain.NewZipCode(field(colZip))
		if err != nil {
			return domain.Contact{}, err
		}
		addr, err := domain.NewPostalAddress(line1, field(colLine2), "", "", state, zip)
		if err != nil {
			return domain.Contact{}, err
		}
		methods = append(methods, domain.PostalMethod{Info: domain.PostalContactInfo{Address: addr}})
	}

	if raw := field(colHomePhone); raw != "" {
		number, err := domain.NewPhoneNumber(raw)
		if err != nil {
			return domain.Contact{}, err
		}
		methods = append(methods, domain.HomePhoneMethod{Info: domain.PhoneContactInfo{Number: number}})
	}

	if raw := field(colWorkPhone); raw != "" {
		number, err := domain.NewPhoneNumber(raw)
		if err != nil {
			return domain.Contact{}, err
		}
		methods = append(methods, domain.WorkPhoneMethod{Info: domain.PhoneContactInfo{Number: number}})
	}

	if len(methods) == 0 {
		return domain.Contact{}, domain.ErrNoContactMethod
	}
	return domain.NewContact("", name, methods[0], methods[1:]...)
}
