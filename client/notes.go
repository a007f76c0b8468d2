package client

import (
	"context"
	"encoding/xml"
	"strconv"

	"github.com/xxxsen/simpy/model"
)

type NoteQuery struct {
	Q string
	// Limit defaults to DefaultLimit when zero or negative.
	Limit int
}

func (q NoteQuery) params(limit int) Params {
	return Params{}.
		Add(paramLimit, strconv.Itoa(limit)).
		Add(paramQ, q.Q)
}

type SaveNoteRequest struct {
	Title       string
	Tags        string
	Description string
}

// noteElement is decoded by hand because a note only counts when it has
// child elements.
type noteElement struct {
	note     model.Note
	children int
}

func (n *noteElement) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	n.note.Tags = []string{}
	for _, attr := range start.Attr {
		if attr.Name.Local == "accessType" {
			n.note.AccessType = attr.Value
		}
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			return nil
		case xml.StartElement:
			n.children++
			if t.Name.Local == "tags" {
				var tags tagList
				if err := d.DecodeElement(&tags, &t); err != nil {
					return err
				}
				n.note.Tags = tags.values()
				continue
			}
			var text string
			if err := d.DecodeElement(&text, &t); err != nil {
				return err
			}
			switch t.Name.Local {
			case "id":
				n.note.ID = text
			case "uri":
				n.note.URI = text
			case "modDate":
				n.note.ModDate = text
			case "addDate":
				n.note.AddDate = text
			case "title":
				n.note.Title = text
			case "description":
				n.note.Description = text
			}
		}
	}
}

func decodeNotes(doc string) ([]model.Note, error) {
	items, err := collect[noteElement](doc, "note")
	if err != nil {
		return nil, err
	}
	notes := make([]model.Note, 0, len(items))
	for _, item := range items {
		if item.children == 0 {
			continue
		}
		notes = append(notes, item.note)
	}
	return notes, nil
}

// GetNotes returns the most recently added notes, or the most relevant ones
// when q.Q is set.
func (c *Client) GetNotes(ctx context.Context, q NoteQuery) (Result[[]model.Note], error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	return call(ctx, c, epGetNotes, q.params(limit), []model.Note{}, decodeNotes)
}

func (c *Client) GetAllNotes(ctx context.Context, q NoteQuery) (Result[[]model.Note], error) {
	return call(ctx, c, epGetNotes, q.params(unlimited), []model.Note{}, decodeNotes)
}

func (c *Client) SaveNote(ctx context.Context, req SaveNoteRequest) (Result[model.OperationStatus], error) {
	if req.Title == "" {
		return Result[model.OperationStatus]{}, requiredParam(paramTitle)
	}
	params := Params{}.
		Add(paramTitle, req.Title).
		Add(paramTags, req.Tags).
		Add(paramDescription, req.Description)
	return c.status(ctx, epSaveNote, params)
}

func (c *Client) DeleteNote(ctx context.Context, noteID string) (Result[model.OperationStatus], error) {
	if noteID == "" {
		return Result[model.OperationStatus]{}, requiredParam(paramNoteID)
	}
	return c.status(ctx, epDeleteNote, Params{}.Add(paramNoteID, noteID))
}
