// Copyright 2026 The Pipenav Authors.
// SPDX-License-Identifier: Apache-2.0

package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pipenav/pipenav/pkg/pipeline"
)

func TestFindTemplateReferences(t *testing.T) {
	const data = `stages:
  - template: stages/build.yml@templates
  - stage: deploy
    jobs:
      - template: jobs/deploy.yml # with a comment
template: top-level.yml
# template: commented-out.yml
`

	refs := pipeline.FindTemplateReferences(pipeline.NormalizeLines(data))
	require.Len(t, refs, 3)

	require.Equal(t, "stages/build.yml@templates", refs[0].Raw)
	require.Equal(t, 1, refs[0].Pos.LineIdx())
	require.Equal(t, 4, refs[0].KeySpan.StartCol)
	require.Equal(t, 4+len("template:"), refs[0].KeySpan.EndCol)

	require.Equal(t, "jobs/deploy.yml", refs[1].Raw)

	require.Equal(t, "top-level.yml", refs[2].Raw)
	require.Equal(t, 0, refs[2].KeySpan.StartCol)
}

func TestFindTemplateReferencesQuoted(t *testing.T) {
	refs := pipeline.FindTemplateReferences(pipeline.NormalizeLines(`- template: "steps/test.yml"`))
	require.Len(t, refs, 1)
	require.Equal(t, "steps/test.yml", refs[0].Raw)
}

func TestFindTemplateReferencesEmptyValueKept(t *testing.T) {
	refs := pipeline.FindTemplateReferences(pipeline.NormalizeLines("- template:\n"))
	require.Len(t, refs, 1)
	require.Equal(t, "", refs[0].Raw)
}
