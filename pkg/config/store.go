package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"example.com/Goodness/pkg/utils/file"
)

type Store interface {
	Load() (*Experiment, error)
	Save(exp *Experiment) error
}

type defaultStore struct {
	Path string
}

func (s *defaultStore) Load() (*Experiment, error) {
	// 1. 读取文件
	// 2. yaml.Unmarshal 到默认配置上，文件里没写的字段保持默认值
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	exp := Default()
	if err := yaml.Unmarshal(data, exp); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	return exp, nil
}

func (s *defaultStore) Save(exp *Experiment) error {
	data, err := yaml.Marshal(exp)
	if err != nil {
		return err
	}
	return file.CreateFileRecursive(s.Path, data, 0644)
}

func NewDefaultStore(path string) Store {
	return &defaultStore{Path: path}
}
