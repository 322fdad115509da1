package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/tucojack/internal/config"
	discordmock "github.com/fadedpez/tucojack/internal/discord/mock"
	"github.com/fadedpez/tucojack/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BotTestSuite struct {
	suite.Suite
	session *discordmock.SessionHandler
	config  *config.Config
	bot     *Bot
}

func TestBotSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func (s *BotTestSuite) SetupTest() {
	s.session = &discordmock.SessionHandler{}
	s.session.Test(s.T())
	s.config = &config.Config{
		AppID:       "test-app-id",
		GuildID:     "test-guild-id",
		Environment: "development",
	}

	s.session.On("AddHandler", mock.AnythingOfType("func(*discordgo.Session, *discordgo.InteractionCreate)")).Return(func() {})

	s.bot = newBot(s.config, s.session, memory.New(), nil)
}

func (s *BotTestSuite) TestRegistersInteractionHandler() {
	s.session.AssertNumberOfCalls(s.T(), "AddHandler", 1)
}

func (s *BotTestSuite) TestStartRegistersCommands() {
	// Setup
	s.session.On("Open").Return(nil)
	for _, cmd := range Commands {
		s.session.On("ApplicationCommandCreate", s.config.AppID, s.config.GuildID, cmd).
			Return(&discordgo.ApplicationCommand{ID: cmd.Name + "-id", Name: cmd.Name}, nil)
	}

	// Execute
	err := s.bot.Start()

	// Assert
	s.Require().NoError(err)
	s.session.AssertExpectations(s.T())
	s.Equal(len(Commands), len(s.bot.commands))
	s.Equal(CommandBlackjack+"-id", s.bot.commands[0].ID)
}

func (s *BotTestSuite) TestStartOpenError() {
	s.session.On("Open").Return(assert.AnError)

	err := s.bot.Start()

	s.Require().ErrorIs(err, assert.AnError)
	s.session.AssertNotCalled(s.T(), "ApplicationCommandCreate", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BotTestSuite) TestStartRegisterCommandsError() {
	// Setup
	s.session.On("Open").Return(nil)
	s.session.On("ApplicationCommandCreate", s.config.AppID, s.config.GuildID, mock.Anything).
		Return(&discordgo.ApplicationCommand{}, assert.AnError)

	// Execute
	err := s.bot.Start()

	// Assert
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to register commands")
	s.Empty(s.bot.commands)
}

func (s *BotTestSuite) TestCleanupCommands() {
	// Setup
	existingCmds := []*discordgo.ApplicationCommand{
		{ID: "cmd1", Name: "test1"},
		{ID: "cmd2", Name: "test2"},
	}
	s.session.On("ApplicationCommands", s.config.AppID, s.config.GuildID).Return(existingCmds, nil)
	for _, cmd := range existingCmds {
		s.session.On("ApplicationCommandDelete", s.config.AppID, s.config.GuildID, cmd.ID).Return(nil)
	}

	// Execute
	err := s.bot.cleanupCommands()

	// Assert
	s.Require().NoError(err)
	s.session.AssertExpectations(s.T())
}

func (s *BotTestSuite) TestCleanupCommandsError() {
	s.session.On("ApplicationCommands", s.config.AppID, s.config.GuildID).
		Return([]*discordgo.ApplicationCommand{}, assert.AnError)

	err := s.bot.cleanupCommands()

	s.Require().Error(err)
}

func (s *BotTestSuite) TestShutdownInDevelopmentRemovesCommands() {
	s.session.On("ApplicationCommands", s.config.AppID, s.config.GuildID).
		Return([]*discordgo.ApplicationCommand{{ID: "cmd1", Name: CommandBlackjack}}, nil)
	s.session.On("ApplicationCommandDelete", s.config.AppID, s.config.GuildID, "cmd1").Return(nil)
	s.session.On("Close").Return(nil)

	s.bot.Shutdown()

	s.session.AssertExpectations(s.T())
}

func (s *BotTestSuite) TestShutdownInProductionKeepsCommands() {
	s.config.Environment = "production"
	s.session.On("Close").Return(assert.AnError)

	s.bot.Shutdown()

	s.session.AssertNotCalled(s.T(), "ApplicationCommands", mock.Anything, mock.Anything)
	s.session.AssertCalled(s.T(), "Close")
}
