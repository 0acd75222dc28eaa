package shell

import (
	"embed"
	"errors"
	"path"
)

//go:embed helptext/*.txt
var helptext embed.FS

func usage() (*Response, error) {
	return usageTopic("usage")
}

func usageTopic(topic string) (*Response, error) {
	dat, err := helptext.ReadFile(path.Join("helptext", path.Base(topic)+".txt"))
	if err != nil {
		return nil, errors.New("there is no help text for the topic " + topic)
	}
	return msg(string(dat)), nil
}
