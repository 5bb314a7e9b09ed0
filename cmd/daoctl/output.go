package main

import (
	"bytes"

	"github.com/goccy/go-json"

	"DAOKit/modules/codec/pbdict"
	"DAOKit/modules/dao"
	"DAOKit/modules/kit/errx"
)

const (
	FormatDictionary = "dictionary"
	FormatExtJSON    = "extjson"
	FormatProtoJSON  = "protojson"
)

// writeObject 按 output.format 输出实体。
func (a *app) writeObject(obj dao.Object) error {
	var (
		data []byte
		err  error
	)
	switch a.cfg.Output.Format {
	case "", FormatDictionary:
		data, err = a.marshal(obj.AsDictionary())
	case FormatExtJSON:
		data, err = dao.MarshalJSON(obj, a.reg)
		if err == nil && a.cfg.Output.Indent {
			var buf bytes.Buffer
			if err = json.Indent(&buf, data, "", "  "); err == nil {
				data = buf.Bytes()
			}
		}
	case FormatProtoJSON:
		data, err = pbdict.MarshalJSON(obj.AsDictionary(), a.cfg.Output.Indent)
	default:
		return errx.ErrInvalidArgument.WithDataMap(map[string]any{"format": a.cfg.Output.Format, "reason": "unknown output format"})
	}
	if err != nil {
		return err
	}
	return a.writeLine(data)
}

// writeReport 命令结果统一输出为 JSON。
func (a *app) writeReport(v any) error {
	data, err := a.marshal(v)
	if err != nil {
		return err
	}
	return a.writeLine(data)
}

func (a *app) marshal(v any) ([]byte, error) {
	if a.cfg.Output.Indent {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func (a *app) writeLine(data []byte) error {
	if _, err := a.out.Write(append(data, '\n')); err != nil {
		return errx.ErrInternal.WithData("op", "daoctl.write").WithCause(err)
	}
	return nil
}
