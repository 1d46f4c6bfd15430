/*
 * Copyright 2025 SREDiag Authors
 * Copyright 2023 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LoggerTestSuite struct {
	suite.Suite
	saved Level
	out   *bytes.Buffer
	log   *Logger
}

func (s *LoggerTestSuite) SetupTest() {
	s.saved = CurrentLevel()
	s.out = &bytes.Buffer{}
	s.log = New("test", s.out)
}

func (s *LoggerTestSuite) TearDownTest() {
	SetLevel(s.saved)
}

func (s *LoggerTestSuite) TestLogColor() {
	SetLevel(LevelTrace)

	s.log.Tracef("this is tracef %s", "hello world")
	s.log.Debugf("this is debugf %s", "hello world")
	s.log.Infof("this is infof %s", "hello world")
	s.log.Warnf("this is warnf %s", "hello world")
	s.log.Errorf("this is errorf %s", "hello world")

	lines := strings.Split(strings.TrimSpace(s.out.String()), "\n")
	s.Require().Len(lines, 5)
	for i, name := range levelName {
		s.Require().True(strings.HasPrefix(lines[i], colors[i]+name), lines[i])
		s.Require().Contains(lines[i], "hello world")
		s.Require().Contains(lines[i], "logger_test.go:")
		s.Require().Contains(lines[i], " test ")
	}
}

func (s *LoggerTestSuite) TestLevelFilter() {
	SetLevel(LevelWarn)
	s.log.Infof("dropped")
	s.log.Debugf("dropped")
	s.Require().Empty(s.out.String())

	s.log.Warnf("kept")
	s.Require().Contains(s.out.String(), "kept")
}

func (s *LoggerTestSuite) TestSetLevelIgnoresOutOfRange() {
	SetLevel(LevelInfo)
	SetLevel(LevelNoPrint + 1)
	SetLevel(LevelTrace - 1)
	s.Require().Equal(LevelInfo, CurrentLevel())
}

func (s *LoggerTestSuite) TestNoPrint() {
	SetLevel(LevelNoPrint)
	s.log.Errorf("silent")
	s.Require().Empty(s.out.String())
}

func TestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}
