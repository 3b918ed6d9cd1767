package locale

// MessageID identifies one user-facing string. The catalog must define every
// id for every supported language.
type MessageID string

// Prompt titles and hints.
const (
	MsgSelectLanguage  MessageID = "select_language"
	MsgRepoURLKind     MessageID = "repo_url_kind"
	MsgProjectName     MessageID = "project_name"
	MsgTemplateRepoURL MessageID = "template_repo_url"
	MsgBranchName      MessageID = "branch_name"
	MsgNewRepoURL      MessageID = "new_repo_url"
	MsgPackageName     MessageID = "package_name"
	MsgDescription     MessageID = "description"
	MsgAuthor          MessageID = "author"
	MsgLicense         MessageID = "license"
	MsgKeywords        MessageID = "keywords"
	MsgMainBranchName  MessageID = "main_branch_name"
	MsgCancelHint      MessageID = "cancel_hint"
)

// Pipeline progress and outcome messages.
const (
	MsgOperationCanceled      MessageID = "operation_canceled"
	MsgCreatingProject        MessageID = "creating_project"
	MsgInstallingDependencies MessageID = "installing_dependencies"
	MsgSettingRemote          MessageID = "setting_remote"
	MsgCleaningBranches       MessageID = "cleaning_branches"
	MsgProjectReady           MessageID = "project_ready"
	MsgNextSteps              MessageID = "next_steps"
)

// Error messages.
const (
	MsgManifestMissing    MessageID = "manifest_missing"
	MsgGenericError       MessageID = "generic_error"
	MsgUnknownError       MessageID = "unknown_error"
	MsgInvalidRepoURL     MessageID = "invalid_repo_url"
	MsgInvalidProjectName MessageID = "invalid_project_name"
)

// MessageIDs returns every defined id. Tests walk this list to prove the
// catalog is total.
func MessageIDs() []MessageID {
	return []MessageID{
		MsgSelectLanguage,
		MsgRepoURLKind,
		MsgProjectName,
		MsgTemplateRepoURL,
		MsgBranchName,
		MsgNewRepoURL,
		MsgPackageName,
		MsgDescription,
		MsgAuthor,
		MsgLicense,
		MsgKeywords,
		MsgMainBranchName,
		MsgCancelHint,
		MsgOperationCanceled,
		MsgCreatingProject,
		MsgInstallingDependencies,
		MsgSettingRemote,
		MsgCleaningBranches,
		MsgProjectReady,
		MsgNextSteps,
		MsgManifestMissing,
		MsgGenericError,
		MsgUnknownError,
		MsgInvalidRepoURL,
		MsgInvalidProjectName,
	}
}

// catalog maps language -> message id -> string.
var catalog = map[Language]map[MessageID]string{
	English: {
		MsgSelectLanguage:  "Select your language",
		MsgRepoURLKind:     "Which type of repository URL do you want to use?",
		MsgProjectName:     "What is the name of your project?",
		MsgTemplateRepoURL: "Enter the template repository URL",
		MsgBranchName:      "Branch to clone (leave blank for the default branch)",
		MsgNewRepoURL:      "New repository URL (leave blank to keep the template remote)",
		MsgPackageName:     "Package name",
		MsgDescription:     "Description",
		MsgAuthor:          "Author",
		MsgLicense:         "License",
		MsgKeywords:        "Keywords (comma separated)",
		MsgMainBranchName:  "Which main branch do you want to use?",
		MsgCancelHint:      "Type c to cancel",

		MsgOperationCanceled:      "Operation canceled.",
		MsgCreatingProject:        "Creating project...",
		MsgInstallingDependencies: "Installing dependencies...",
		MsgSettingRemote:          "Setting the new repository remote...",
		MsgCleaningBranches:       "Cleaning up branches...",
		MsgProjectReady:           "Project ready!",
		MsgNextSteps: "# %s\n\nYour project is ready. Next steps:\n\n" +
			"1. `cd %s`\n" +
			"2. review `package.json`\n" +
			"3. `git push -u origin %s`\n",

		MsgManifestMissing:    "package.json not found in the template.",
		MsgGenericError:       "An error occurred",
		MsgUnknownError:       "Unknown error",
		MsgInvalidRepoURL:     "Invalid repository URL for the selected type.",
		MsgInvalidProjectName: "Project names may only contain letters, digits, underscores and dashes.",
	},
	Portuguese: {
		MsgSelectLanguage:  "Selecione seu idioma",
		MsgRepoURLKind:     "Qual tipo de URL de repositório você deseja usar?",
		MsgProjectName:     "Qual é o nome do seu projeto?",
		MsgTemplateRepoURL: "Informe a URL do repositório de template",
		MsgBranchName:      "Branch para clonar (deixe em branco para a branch padrão)",
		MsgNewRepoURL:      "URL do novo repositório (deixe em branco para manter o remote do template)",
		MsgPackageName:     "Nome do pacote",
		MsgDescription:     "Descrição",
		MsgAuthor:          "Autor",
		MsgLicense:         "Licença",
		MsgKeywords:        "Palavras-chave (separadas por vírgula)",
		MsgMainBranchName:  "Qual branch principal você deseja usar?",
		MsgCancelHint:      "Digite c para cancelar",

		MsgOperationCanceled:      "Operação cancelada.",
		MsgCreatingProject:        "Criando projeto...",
		MsgInstallingDependencies: "Instalando dependências...",
		MsgSettingRemote:          "Configurando o remote do novo repositório...",
		MsgCleaningBranches:       "Limpando branches...",
		MsgProjectReady:           "Projeto pronto!",
		MsgNextSteps: "# %s\n\nSeu projeto está pronto. Próximos passos:\n\n" +
			"1. `cd %s`\n" +
			"2. revise o `package.json`\n" +
			"3. `git push -u origin %s`\n",

		MsgManifestMissing:    "package.json não encontrado no template.",
		MsgGenericError:       "Ocorreu um erro",
		MsgUnknownError:       "Erro desconhecido",
		MsgInvalidRepoURL:     "URL de repositório inválida para o tipo selecionado.",
		MsgInvalidProjectName: "O nome do projeto pode conter apenas letras, dígitos, sublinhados e hífens.",
	},
}
